package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/overtime/internal/overtime"
	"github.com/mmynk/overtime/internal/storage"
	pb "github.com/mmynk/overtime/pkg/proto"
	"github.com/mmynk/overtime/pkg/proto/protoconnect"
)

// GroupService implements the Connect GroupService.
type GroupService struct {
	protoconnect.UnimplementedGroupServiceHandler
	groups *overtime.GroupRepository
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.GroupStore) *GroupService {
	return &GroupService{groups: overtime.NewGroupRepository(store)}
}

// CreateGroup appends a new group to the caller's list.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[pb.CreateGroupRequest]) (*connect.Response[pb.CreateGroupResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateGroup request received", "user_id", userID, "name", req.Msg.Name)

	group, err := s.groups.Create(ctx, userID, req.Msg.Name)
	if err != nil {
		slog.Warn("CreateGroup failed", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Group created", "group_id", group.ID)
	return connect.NewResponse(&pb.CreateGroupResponse{Group: toProtoGroup(group)}), nil
}

// ListGroups returns the caller's groups in display order.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[pb.ListGroupsRequest]) (*connect.Response[pb.ListGroupsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	groups, err := s.groups.List(ctx, userID)
	if err != nil {
		slog.Error("ListGroups failed", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*pb.Group, len(groups))
	for i, g := range groups {
		out[i] = toProtoGroup(g)
	}

	slog.Debug("ListGroups successful", "count", len(groups))
	return connect.NewResponse(&pb.ListGroupsResponse{Groups: out}), nil
}

// UpdateGroup renames or collapses a group.
func (s *GroupService) UpdateGroup(ctx context.Context, req *connect.Request[pb.UpdateGroupRequest]) (*connect.Response[pb.UpdateGroupResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("UpdateGroup request received", "user_id", userID, "group_id", req.Msg.GroupId)

	group, err := s.groups.Update(ctx, userID, req.Msg.GroupId, overtime.GroupUpdate{
		Name:      req.Msg.Name,
		Collapsed: req.Msg.Collapsed,
	})
	if err != nil {
		slog.Warn("UpdateGroup failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.UpdateGroupResponse{Group: toProtoGroup(group)}), nil
}

// MoveGroup places a group at a new index.
func (s *GroupService) MoveGroup(ctx context.Context, req *connect.Request[pb.MoveGroupRequest]) (*connect.Response[pb.MoveGroupResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("MoveGroup request received", "user_id", userID, "group_id", req.Msg.GroupId, "index", req.Msg.Index)

	if err := s.groups.Move(ctx, userID, req.Msg.GroupId, int(req.Msg.Index)); err != nil {
		slog.Warn("MoveGroup failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.MoveGroupResponse{}), nil
}

// DeleteGroup removes a group. Its records become ungrouped.
func (s *GroupService) DeleteGroup(ctx context.Context, req *connect.Request[pb.DeleteGroupRequest]) (*connect.Response[pb.DeleteGroupResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteGroup request received", "user_id", userID, "group_id", req.Msg.GroupId)

	if err := s.groups.Delete(ctx, userID, req.Msg.GroupId); err != nil {
		slog.Warn("DeleteGroup failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Group deleted", "group_id", req.Msg.GroupId)
	return connect.NewResponse(&pb.DeleteGroupResponse{}), nil
}
