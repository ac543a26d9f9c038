package csvio

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mmynk/overtime/internal/models"
	"github.com/mmynk/overtime/internal/overtime"
	"github.com/mmynk/overtime/internal/storage/sqlite"
)

type fixture struct {
	store    *sqlite.SQLiteStore
	user     *models.User
	importer *Importer
	exporter *Exporter
}

func setup(t *testing.T) *fixture {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "csv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	user := models.NewUser("csv@example.com", "CSV", "hash")
	require.NoError(t, store.CreateUser(context.Background(), user))

	return &fixture{
		store:    store,
		user:     user,
		importer: NewImporter(overtime.NewRecordRepository(store), overtime.NewGroupRepository(store)),
		exporter: NewExporter(store),
	}
}

type tuple struct {
	date    string
	salary  float64
	endHour int
	minutes int
}

func tuples(t *testing.T, f *fixture) []tuple {
	t.Helper()

	records, err := f.store.ListRecords(context.Background(), f.user.ID)
	require.NoError(t, err)
	out := make([]tuple, len(records))
	for i, r := range records {
		out[i] = tuple{r.Date, r.Salary, r.EndHour, r.Minutes}
	}
	return out
}

func TestImportCSV_PartialFailure(t *testing.T) {
	f := setup(t)

	input := strings.Join([]string{
		"Date,Salary,End Hour,Minutes",
		"2024-01-01,5000,20,30",
		"2024-01-02,5000,21,70",
		"2024-01-03,5000,22,0",
		"2024-01-04,-10,20,0",
		"2024-01-05,4800,19,45",
	}, "\n")

	res, err := f.importer.ImportCSV(context.Background(), f.user.ID, input)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Imported)
	assert.Equal(t, []RowError{
		{Row: 3, Reason: "minutes must be between 0 and 59"},
		{Row: 5, Reason: "salary must be greater than 0"},
	}, res.Errors)

	records, err := f.store.ListRecords(context.Background(), f.user.ID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for _, r := range records {
		assert.NotEqual(t, "2024-01-02", r.Date)
		assert.NotEqual(t, "2024-01-04", r.Date)
	}
}

func TestImportCSV_RowValidation(t *testing.T) {
	tests := []struct {
		name   string
		row    string
		reason string
	}{
		{name: "missing date", row: ",5000,20,0", reason: "missing date"},
		{name: "missing minutes", row: "2024-01-01,5000,20,", reason: "missing minutes"},
		{name: "salary not numeric", row: "2024-01-01,lots,20,0", reason: "salary is not a number"},
		{name: "zero salary", row: "2024-01-01,0,20,0", reason: "salary must be greater than 0"},
		{name: "end hour too early", row: "2024-01-01,5000,18,0", reason: "end_hour must be at least 19"},
		{name: "end hour past next day", row: "2024-01-01,5000,48,0", reason: "end_hour must be at most 47"},
		{name: "end hour overflowing", row: "2024-01-01,5000,4611686018427387904,0", reason: "end_hour must be at most 47"},
		{name: "end hour fractional", row: "2024-01-01,5000,20.5,0", reason: "end_hour is not an integer"},
		{name: "short row", row: "2024-01-01,5000", reason: "missing end_hour"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)

			res, err := f.importer.ImportCSV(context.Background(), f.user.ID, "date,salary,end_hour,minutes\n"+tt.row+"\n")
			require.NoError(t, err)
			assert.Zero(t, res.Imported)
			assert.Equal(t, []RowError{{Row: 2, Reason: tt.reason}}, res.Errors)
		})
	}
}

func TestImportCSV_BadDateIsRowError(t *testing.T) {
	f := setup(t)

	res, err := f.importer.ImportCSV(context.Background(), f.user.ID, "date,salary,end_hour,minutes\n05/01/2024,5000,20,0\n")
	require.NoError(t, err)
	assert.Zero(t, res.Imported)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 2, res.Errors[0].Row)
	assert.Contains(t, res.Errors[0].Reason, "YYYY-MM-DD")
}

func TestImportCSV_RejectedRowCreatesNoGroup(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	input := "date,salary,end_hour,minutes,group\n" +
		"05/01/2024,5000,20,0,Ghost\n" +
		"2024-05-01,5000,18,0,Early\n" +
		"2024-05-01,5000,20,0,\n"

	res, err := f.importer.ImportCSV(ctx, f.user.ID, input)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Len(t, res.Errors, 2)

	groups, err := f.store.ListGroups(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestImportCSV_GroupsAreResolvedByName(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	existing := &models.Group{UserID: f.user.ID, Name: "Existing"}
	require.NoError(t, f.store.CreateGroup(ctx, existing))

	input := "\ufeffDATE, salary ,End_Hour,minutes,Group,Notes\n" +
		"2024-02-01,5000,20,0,Existing,a\n" +
		"2024-02-02,5000,20,0,Fresh,b\n" +
		"2024-02-03,5000,20,0,Fresh,c\n" +
		"2024-02-04,5000,20,0,,d\n"

	res, err := f.importer.ImportCSV(ctx, f.user.ID, input)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Imported)
	assert.Empty(t, res.Errors)

	groups, err := f.store.ListGroups(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Existing", groups[0].Name)
	assert.Equal(t, "Fresh", groups[1].Name)

	records, err := f.store.ListRecords(ctx, f.user.ID)
	require.NoError(t, err)
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.GroupName
	}
	assert.Equal(t, []string{"", "Existing", "Fresh", "Fresh"}, names)
}

func TestImportCSV_MalformedFile(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "whitespace only", input: "  \n\n"},
		{name: "missing required column", input: "date,salary,minutes\n2024-01-01,5000,0\n"},
		{name: "broken header quoting", input: "\"date,salary\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)

			_, err := f.importer.ImportCSV(context.Background(), f.user.ID, tt.input)
			assert.ErrorIs(t, err, models.ErrMalformedFile)
		})
	}
}

func TestExportCSV(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	repo := overtime.NewRecordRepository(f.store)
	g := &models.Group{UserID: f.user.ID, Name: "Q1, late"}
	require.NoError(t, f.store.CreateGroup(ctx, g))

	_, err := repo.Create(ctx, f.user.ID, overtime.RecordInput{Date: "2024-01-01", Salary: 5000, EndHour: 20, Minutes: 30})
	require.NoError(t, err)
	_, err = repo.Create(ctx, f.user.ID, overtime.RecordInput{GroupID: g.ID, Date: "2024-01-02", Salary: 5000.5, EndHour: 22})
	require.NoError(t, err)

	out, err := f.exporter.ExportCSV(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Equal(t,
		"Date,Salary,End Hour,Minutes,Calculated Pay,Group\n"+
			"2024-01-01,5000,20,30,42,\n"+
			"2024-01-02,5000.5,22,0,91,\"Q1, late\"\n",
		out)
}

func TestExportImport_RoundTrip(t *testing.T) {
	src := setup(t)
	ctx := context.Background()

	input := "date,salary,end_hour,minutes,group\n" +
		"2024-03-01,5000,20,30,\n" +
		"2024-03-02,4800.25,21,15,Week 9\n" +
		"2024-03-03,7200,24,0,Week 9\n" +
		"2024-03-04,5000,19,0,Week 10\n"
	res, err := src.importer.ImportCSV(ctx, src.user.ID, input)
	require.NoError(t, err)
	require.Equal(t, 4, res.Imported)

	exported, err := src.exporter.ExportCSV(ctx, src.user.ID)
	require.NoError(t, err)

	dst := setup(t)
	res, err = dst.importer.ImportCSV(ctx, dst.user.ID, exported)
	require.NoError(t, err)
	assert.Empty(t, res.Errors)
	assert.Equal(t, 4, res.Imported)

	assert.ElementsMatch(t, tuples(t, src), tuples(t, dst))
}

func TestExportImport_ZeroSalaryIsNotReimported(t *testing.T) {
	src := setup(t)
	ctx := context.Background()

	repo := overtime.NewRecordRepository(src.store)
	_, err := repo.Create(ctx, src.user.ID, overtime.RecordInput{Date: "2024-06-01", Salary: 0, EndHour: 21})
	require.NoError(t, err)
	_, err = repo.Create(ctx, src.user.ID, overtime.RecordInput{Date: "2024-06-02", Salary: 5000, EndHour: 21})
	require.NoError(t, err)

	exported, err := src.exporter.ExportCSV(ctx, src.user.ID)
	require.NoError(t, err)

	dst := setup(t)
	res, err := dst.importer.ImportCSV(ctx, dst.user.ID, exported)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "salary must be greater than 0", res.Errors[0].Reason)
	assert.Equal(t, []tuple{{"2024-06-02", 5000, 21, 0}}, tuples(t, dst))
}

func TestExportXLSX(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.importer.ImportCSV(ctx, f.user.ID, "date,salary,end_hour,minutes,group\n2024-04-01,5000,21,0,April\n")
	require.NoError(t, err)

	data, err := f.exporter.ExportXLSX(ctx, f.user.ID)
	require.NoError(t, err)

	book, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer book.Close()

	assert.Equal(t, SheetName, book.GetSheetName(0))
	rows, err := book.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, ExportHeader, rows[0])
	assert.Equal(t, []string{"2024-04-01", "5000", "21", "0", "56", "April"}, rows[1])
}
