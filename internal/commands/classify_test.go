package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initProject scaffolds a project and drops a trial balance into it.
func initProject(t *testing.T, tbContent string) (dir, tbPath string) {
	t.Helper()
	dir = t.TempDir()
	_, err := runFolio(t, "init", dir, "--name", "Acme Trading Ltd")
	require.NoError(t, err)

	tbPath = filepath.Join(dir, "import", "tb.csv")
	require.NoError(t, os.WriteFile(tbPath, []byte(tbContent), 0o644))
	return dir, tbPath
}

const activityTB = `code,name,debit,credit
1000,Cash desk,0,25000
1140,Customers,0,175014.81
2010,Suppliers,89500,0
`

func TestClassify_PrintsSectionsAndLogsRun(t *testing.T) {
	dir, tb := initProject(t, activityTB)

	out, err := runFolio(t, "classify", tb, "--project", dir, "--format", "activity")
	require.NoError(t, err, out)

	assert.Contains(t, out, "Acme Trading Ltd")
	assert.Contains(t, out, "cash")
	assert.Contains(t, out, "25000")
	assert.Contains(t, out, "175014.81")
	assert.Contains(t, out, "89500")
	assert.Contains(t, out, "coverage 100.0%")

	data, err := os.ReadFile(filepath.Join(dir, "logs", "run-log.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "tb.csv")
}

func TestClassify_WarnsOnInvalidCode(t *testing.T) {
	dir, tb := initProject(t, "code,name,debit,credit\n9999,Off-balance,0,10\n1000,Cash desk,0,100\n")

	out, err := runFolio(t, "classify", tb, "--project", dir, "--format", "activity")
	require.NoError(t, err, out)
	assert.Contains(t, out, "warning: skipped \"9999\"")
}

func TestCoverage_ReportsUnmapped(t *testing.T) {
	dir, tb := initProject(t, "code,name,debit,credit\n1250,Unassigned receivable,0,10\n")

	out, err := runFolio(t, "coverage", tb, "--project", dir, "--format", "activity")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Coverage: 0.0%")
	assert.Contains(t, out, "Unmapped accounts (1)")
	assert.Contains(t, out, "1250")
}

func TestPreview_ShowsCapturedAccounts(t *testing.T) {
	dir, tb := initProject(t, activityTB)

	out, err := runFolio(t, "preview", "cash", tb, "--project", dir, "--format", "activity")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Cash desk")
	assert.Contains(t, out, "1 of 3 accounts")
}

func TestRules_EditAndValidate(t *testing.T) {
	dir, tb := initProject(t, "code,name,debit,credit\n1250,Unassigned receivable,0,10\n")

	// Pull the stray code into receivables via an include.
	out, err := runFolio(t, "rules", "include", "trade_receivables", "1250", "--project", dir)
	require.NoError(t, err, out)

	out, err = runFolio(t, "coverage", tb, "--project", dir, "--format", "activity")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Coverage: 100.0%")
}

func TestRules_AddRangeRejectsReversed(t *testing.T) {
	dir, _ := initProject(t, activityTB)

	out, err := runFolio(t, "rules", "add-range", "cash", "1099", "1000", "--project", dir)
	require.Error(t, err)
	assert.Contains(t, out, "reversed")
}

func TestRules_List(t *testing.T) {
	dir, _ := initProject(t, activityTB)

	out, err := runFolio(t, "rules", "list", "--project", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "cash")
	assert.Contains(t, out, "1000-1099")
}
