package script_test

import (
	_ "embed"
	"strings"
	"testing"

	"github.com/pseudomuto/storekeeper/pkg/script"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/feature_store.sql
var featureStoreSQL string

func texts(stmts []*script.Statement) []string {
	out := make([]string, len(stmts))
	for i, stmt := range stmts {
		out[i] = stmt.Text
	}
	return out
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty",
			input:    "",
			expected: []string{},
		},
		{
			name:     "single statement",
			input:    "SELECT 1;",
			expected: []string{"SELECT 1"},
		},
		{
			name:     "multi-line statement is joined with spaces",
			input:    "CREATE TABLE t (\n  id INT,\n  name STRING\n);",
			expected: []string{"CREATE TABLE t ( id INT, name STRING )"},
		},
		{
			name:     "blank lines are dropped",
			input:    "\n\nSELECT 1;\n\n\nSELECT 2;\n",
			expected: []string{"SELECT 1", "SELECT 2"},
		},
		{
			name:     "semicolon mid-line does not terminate",
			input:    "SELECT 1; SELECT 2\nFROM t;",
			expected: []string{"SELECT 1; SELECT 2 FROM t"},
		},
		{
			name:     "semicolon on its own line",
			input:    "SELECT 1\n;",
			expected: []string{"SELECT 1"},
		},
		{
			name:     "empty statements are discarded",
			input:    ";\n  ;  \nSELECT 1;",
			expected: []string{"SELECT 1"},
		},
		{
			name:     "unterminated trailing statement is kept",
			input:    "SELECT 1;\nSELECT 2\nFROM t",
			expected: []string{"SELECT 1", "SELECT 2 FROM t"},
		},
		{
			name:     "windows line endings",
			input:    "SELECT 1;\r\nSELECT 2;\r\n",
			expected: []string{"SELECT 1", "SELECT 2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, texts(script.Split(tt.input)))
		})
	}
}

func TestSplit_Indices(t *testing.T) {
	stmts := script.Split("SELECT 1;\n;\nSELECT 2;\nSELECT 3;")
	require.Len(t, stmts, 3)

	for i, stmt := range stmts {
		require.Equal(t, i+1, stmt.Index)
	}
}

func TestParse_FeatureStoreScript(t *testing.T) {
	stmts := script.Parse(featureStoreSQL)

	require.Equal(t, []string{
		"CREATE DATABASE IF NOT EXISTS FEAT_DB",
		"CREATE SCHEMA IF NOT EXISTS FEAT_DB.FEAT_SCHEMA",
		"CREATE OR REPLACE TABLE FEAT_DB.FEAT_SCHEMA.customer_transactions ( transaction_id STRING, customer_id STRING, amount FLOAT, note STRING )",
		"INSERT INTO FEAT_DB.FEAT_SCHEMA.customer_transactions VALUES ('tx0001', 'cust01', 120.5, 'promo--spring'), ('tx0002', 'cust02', 80.0, 'n/a')",
		"SELECT * FROM FEAT_DB.FEAT_SCHEMA.customer_transactions LIMIT 5",
		"CREATE OR REPLACE VIEW FEAT_DB.FEAT_SCHEMA.customer_agg_30d AS SELECT customer_id, AVG(amount) AS avg_tx_amount_30d FROM FEAT_DB.FEAT_SCHEMA.customer_transactions GROUP BY customer_id",
	}, texts(stmts))
}

func TestParse_ReproducesLogicalLines(t *testing.T) {
	input := `-- header
CREATE TABLE a (
  id INT
);
/* block
   spanning */
INSERT INTO a VALUES (1);

SELECT * FROM a;
`
	var logical []string
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") || strings.HasPrefix(line, "/*") || strings.HasSuffix(line, "*/") {
			continue
		}
		logical = append(logical, line)
	}

	stmts := script.Parse(input)
	rebuilt := make([]string, len(stmts))
	for i, stmt := range stmts {
		rebuilt[i] = stmt.Text + ";"
	}

	require.Equal(t, strings.Join(logical, " "), strings.Join(rebuilt, " "))
}
