package service

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mmynk/overtime/internal/models"
	pb "github.com/mmynk/overtime/pkg/proto"
)

func toProtoUser(u *models.User) *pb.User {
	return &pb.User{
		Id:            u.ID,
		Email:         u.Email,
		DisplayName:   u.DisplayName,
		MonthlySalary: u.MonthlySalary,
		CreatedAt:     unixTimestamp(u.CreatedAt),
	}
}

func toProtoRecord(r *models.Record) *pb.Record {
	return &pb.Record{
		Id:            r.ID,
		GroupId:       r.GroupID,
		GroupName:     r.GroupName,
		Date:          r.Date,
		Salary:        r.Salary,
		EndHour:       int32(r.EndHour),
		Minutes:       int32(r.Minutes),
		CalculatedPay: r.CalculatedPay,
		SortOrder:     int32(r.SortOrder),
		CreatedAt:     unixTimestamp(r.CreatedAt),
	}
}

func toProtoGroup(g *models.Group) *pb.Group {
	return &pb.Group{
		Id:        g.ID,
		Name:      g.Name,
		SortOrder: int32(g.SortOrder),
		Collapsed: g.Collapsed,
		CreatedAt: unixTimestamp(g.CreatedAt),
	}
}

func toProtoSettings(s models.Settings) *pb.Settings {
	return &pb.Settings{
		MonthlySalary:      s.MonthlySalary,
		UngroupedCollapsed: s.UngroupedCollapsed,
	}
}

func unixTimestamp(sec int64) *timestamppb.Timestamp {
	return timestamppb.New(time.Unix(sec, 0))
}
