package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/roastcurve/internal/parquet"
	"github.com/huangsam/roastcurve/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReaderSupports(t *testing.T) {
	r := NewReader(schema.DefaultFieldMapping(), false)
	assert.True(t, r.Supports("roast.csv"))
	assert.True(t, r.Supports("roast.TXT"))
	assert.True(t, r.Supports("dir/roast.xlsx"))
	assert.True(t, r.Supports("roast.xlsm"))
	assert.True(t, r.Supports("roast.parquet"))
	assert.False(t, r.Supports("roast.md"))
	assert.False(t, r.Supports("roast"))
}

func TestReadRecordingCSVWithHeader(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ethiopia.csv", "Time,ET,BT,Fan,Power,RoR\n"+
		"00:00,200,210°C,,,\n"+
		"00:01,190,150,,,-40\n"+
		"00:02,180,bad,,,\n"+
		"\n"+
		"00:03,175,120,,,-25\n")

	r := NewReader(schema.DefaultFieldMapping(), false)
	rec, err := r.ReadRecording(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "ethiopia.csv", rec.ID)
	assert.Equal(t, path, rec.Path)
	assert.Equal(t, 1, rec.Malformed)
	assert.Equal(t, 3.0, rec.MaxSeconds)
	require.Len(t, rec.Samples, 3)

	assert.Equal(t, 0.0, rec.Samples[0].Seconds)
	assert.Equal(t, 210.0, rec.Samples[0].Primary)
	assert.Nil(t, rec.Samples[0].Secondary)

	assert.Equal(t, 1.0, rec.Samples[1].Seconds)
	require.NotNil(t, rec.Samples[1].Secondary)
	assert.Equal(t, -40.0, *rec.Samples[1].Secondary)

	assert.Equal(t, 3.0, rec.Samples[2].Seconds)
	assert.Equal(t, 120.0, rec.Samples[2].Primary)
}

func TestReadRecordingCSVHeaderless(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "kenya.csv", "0;x;200;x;x;0\n1;x;150;x;x;-40\n")

	r := NewReader(schema.DefaultFieldMapping(), false)
	rec, err := r.ReadRecording(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, rec.Samples, 2)
	assert.Equal(t, 200.0, rec.Samples[0].Primary)
	assert.Equal(t, 1.0, rec.Samples[1].Seconds)
	require.NotNil(t, rec.Samples[1].Secondary)
	assert.Equal(t, -40.0, *rec.Samples[1].Secondary)
	assert.Equal(t, 0, rec.Malformed)
}

func TestReadRecordingCSVForcedMapping(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "forced.csv", "Time,Temp,RoR\n0,100,5\n1,101,6\n")

	r := NewReader(schema.FieldMapping{Time: 0, Primary: 1, Secondary: -1}, true)
	rec, err := r.ReadRecording(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, rec.Samples, 2)
	assert.Equal(t, 101.0, rec.Samples[1].Primary)
	assert.Nil(t, rec.Samples[1].Secondary)
}

func TestReadRecordingCSVComments(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", "# exported log\ntime\ttemp\n0\t90\n5\t95\n")

	r := NewReader(schema.DefaultFieldMapping(), false)
	rec, err := r.ReadRecording(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, rec.Samples, 2)
	assert.Equal(t, 5.0, rec.MaxSeconds)
	assert.Equal(t, 95.0, rec.Samples[1].Primary)
}

func TestReadRecordingErrors(t *testing.T) {
	dir := t.TempDir()
	r := NewReader(schema.DefaultFieldMapping(), false)

	_, err := r.ReadRecording(context.Background(), filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)

	unsupported := writeFile(t, dir, "roast.md", "0,0,0")
	_, err = r.ReadRecording(context.Background(), unsupported)
	assert.ErrorContains(t, err, "unsupported file type")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	valid := writeFile(t, dir, "roast.csv", "0,0,100\n")
	_, err = r.ReadRecording(ctx, valid)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadRecordingXLSX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brazil.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Time", "BT", "RoR"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{0.0, 210.0, 0.0}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{0.0025, 180.5, -20.0}))
	require.NoError(t, f.SetSheetRow(sheet, "A4", &[]any{"03:40", 182.0, -10.0}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	r := NewReader(schema.DefaultFieldMapping(), false)
	rec, err := r.ReadRecording(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "brazil.xlsx", rec.ID)
	require.Len(t, rec.Samples, 3)
	assert.Equal(t, 0.0, rec.Samples[0].Seconds)
	assert.Equal(t, 216.0, rec.Samples[1].Seconds)
	assert.Equal(t, 180.5, rec.Samples[1].Primary)
	assert.Equal(t, 220.0, rec.Samples[2].Seconds)
	require.NotNil(t, rec.Samples[2].Secondary)
	assert.Equal(t, -10.0, *rec.Samples[2].Secondary)
	assert.Equal(t, 220.0, rec.MaxSeconds)
}

func TestReadRecordingParquet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "colombia.parquet")
	rows := []parquet.SampleRow{
		{Seconds: 0, Primary: 200},
		{Seconds: 1, Primary: 150, Secondary: schema.Float(-40)},
		{Seconds: 2, Primary: 140, Secondary: schema.Float(-20)},
	}
	require.NoError(t, parquet.WriteSamplesParquet(rows, path))

	r := NewReader(schema.DefaultFieldMapping(), false)
	rec, err := r.ReadRecording(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "colombia.parquet", rec.ID)
	assert.Equal(t, 2.0, rec.MaxSeconds)
	require.Len(t, rec.Samples, 3)
	assert.Nil(t, rec.Samples[0].Secondary)
	require.NotNil(t, rec.Samples[2].Secondary)
	assert.Equal(t, -20.0, *rec.Samples[2].Secondary)
}

func TestParseExcelTime(t *testing.T) {
	tests := []struct {
		in       string
		expected float64
		wantErr  bool
	}{
		{in: "0", expected: 0},
		{in: "0.0025", expected: 216},
		{in: "0.5", expected: 43200},
		{in: "90", expected: 90},
		{in: "1.5", expected: 1.5},
		{in: "05:12", expected: 312},
		{in: " 01:00:00 ", expected: 3600},
		{in: "-1", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseExcelTime(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestParseNumber(t *testing.T) {
	v, err := parseNumber(" 201.5 °C ")
	require.NoError(t, err)
	assert.Equal(t, 201.5, v)

	v, err = parseNumber("390℉")
	require.NoError(t, err)
	assert.Equal(t, 390.0, v)

	_, err = parseNumber("")
	assert.Error(t, err)
	_, err = parseNumber("NaN")
	assert.Error(t, err)
	_, err = parseNumber("+Inf")
	assert.Error(t, err)
}

func TestSniffDelimiter(t *testing.T) {
	assert.Equal(t, ',', sniffDelimiter([]byte("a,b,c")))
	assert.Equal(t, ';', sniffDelimiter([]byte("a;b;c")))
	assert.Equal(t, '\t', sniffDelimiter([]byte("a\tb\tc")))
	assert.Equal(t, ',', sniffDelimiter([]byte("single")))
}

func TestFirstDataLine(t *testing.T) {
	assert.Equal(t, "a;b", string(firstDataLine([]byte("# note\n\n a;b \nc;d"))))
	assert.Nil(t, firstDataLine([]byte("# only comments\n")))
}
