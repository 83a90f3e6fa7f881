package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, ",", config.CSV.Delimiter)
	assert.Equal(t, "", config.Data.Directory)
	assert.Equal(t, "expenses.txt", config.Data.File)
	assert.Equal(t, "categories.yaml", config.Data.CategoriesFile)
	assert.False(t, config.Reset.ClearBudgets)
	assert.Equal(t, "expense_report.txt", config.Report.File)
	assert.Equal(t, "text", config.Report.Format)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	t.Setenv("EXPENSE_LOG_LEVEL", "debug")
	t.Setenv("EXPENSE_CSV_DELIMITER", ";")
	t.Setenv("EXPENSE_DATA_FILE", "my-expenses.csv")
	t.Setenv("EXPENSE_RESET_CLEAR_BUDGETS", "true")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, ";", config.CSV.Delimiter)
	assert.Equal(t, "my-expenses.csv", config.Data.File)
	assert.True(t, config.Reset.ClearBudgets)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		c := &Config{}
		c.Log.Level = "info"
		c.Log.Format = "text"
		c.CSV.Delimiter = ","
		c.Data.File = "expenses.txt"
		c.Report.Format = "text"
		return c
	}

	assert.NoError(t, validateConfig(valid()))

	c := valid()
	c.Log.Level = "bogus"
	assert.Error(t, validateConfig(c))

	c = valid()
	c.Log.Format = "yaml"
	assert.Error(t, validateConfig(c))

	c = valid()
	c.CSV.Delimiter = ";;"
	assert.Error(t, validateConfig(c))

	c = valid()
	c.Data.File = ""
	assert.Error(t, validateConfig(c))

	c = valid()
	c.Report.Format = "xml"
	assert.Error(t, validateConfig(c))
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	c := &Config{}
	c.Log.Level = "debug"
	c.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(c)
	assert.Equal(t, "debug", logger.GetLevel().String())
}
