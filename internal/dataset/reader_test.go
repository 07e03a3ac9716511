package dataset

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"hrdash/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDataReader_CSV(t *testing.T) {
	path := writeFile(t, "employees.csv", "Age, Department ,Attrition\n 41,Sales,Yes\n49,HR , No\n")

	records, err := NewDataReader(path).Read()
	require.NoError(t, err)

	assert.Equal(t, Records{
		{"Age", "Department", "Attrition"},
		{"41", "Sales", "Yes"},
		{"49", "HR", "No"},
	}, records)
}

func TestDataReader_StripsByteOrderMark(t *testing.T) {
	for name, content := range map[string]string{
		"plain":  "\ufeffAttrition,Age\nYes,30\nNo,40\n",
		"quoted": "\ufeff\"Attrition\",\"Age\"\nYes,30\nNo,40\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, "employees.csv", content)

			records, err := NewDataReader(path).Read()
			require.NoError(t, err)
			assert.Equal(t, Records{{"Attrition", "Age"}, {"Yes", "30"}, {"No", "40"}}, records)
		})
	}
}

func TestDataReader_HeaderOnly(t *testing.T) {
	path := writeFile(t, "employees.csv", "Age,Attrition\n")

	records, err := NewDataReader(path).Read()
	require.NoError(t, err)
	assert.Equal(t, Records{{"Age", "Attrition"}}, records)
}

func TestDataReader_TSV(t *testing.T) {
	path := writeFile(t, "employees.tsv", "Age\tAttrition\n30\tNo\n")

	records, err := NewDataReader(path).Read()
	require.NoError(t, err)
	assert.Equal(t, Records{{"Age", "Attrition"}, {"30", "No"}}, records)
}

func TestDataReader_Excel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Age", "Department", "Attrition"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{35, "Engineering", 1}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{28, "Sales"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	records, err := NewDataReader(path).Read()
	require.NoError(t, err)

	assert.Equal(t, Records{
		{"Age", "Department", "Attrition"},
		{"35", "Engineering", "1"},
		{"28", "Sales", ""},
	}, records)
}

func TestDataReader_MissingFile(t *testing.T) {
	for _, name := range []string{"absent.csv", "absent.xlsx"} {
		_, err := NewDataReader(filepath.Join(t.TempDir(), name)).Read()
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, fs.ErrNotExist), name)
	}
}

func TestDataReader_MalformedCSV(t *testing.T) {
	path := writeFile(t, "broken.csv", "Age,Attrition\n30,No,extra\n")

	_, err := NewDataReader(path).Read()
	require.Error(t, err)
	assert.Equal(t, errors.CodeDataSource, errors.GetCode(err))
	assert.False(t, stderrors.Is(err, fs.ErrNotExist))
}

func TestDataReader_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.csv", "")

	_, err := NewDataReader(path).Read()
	require.Error(t, err)
	assert.Equal(t, errors.CodeDataSource, errors.GetCode(err))
}
