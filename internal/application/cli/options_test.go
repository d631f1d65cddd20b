package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/yonekos/YonSeWeather-cli/configs"
	"github.com/yonekos/YonSeWeather-cli/internal/domain/model"
)

func defaults() Defaults {
	return Defaults{
		Units:   "metric",
		Lang:    "en",
		Timeout: 10 * time.Second,
		APIKey:  "configured-key",
	}
}

func TestParseAppliesDefaults(t *testing.T) {
	opts, err := Parse([]string{"Moscow"}, defaults(), strings.NewReader(""), &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "Moscow", opts.City)
	assert.Equal(t, "configured-key", opts.APIKey)
	assert.Equal(t, "metric", opts.Units)
	assert.Equal(t, "en", opts.Lang)
	assert.Equal(t, 10*time.Second, opts.Timeout)
	assert.False(t, opts.Forecast)
	assert.False(t, opts.Extended)
}

func TestParseFlagsOverrideDefaults(t *testing.T) {
	args := []string{"--api-key", "flag-key", "--units", "imperial", "--lang", "de", "--timeout", "2.5", "--forecast", "--extended", "New York"}

	opts, err := Parse(args, defaults(), strings.NewReader(""), &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "New York", opts.City)
	assert.Equal(t, "flag-key", opts.APIKey)
	assert.Equal(t, "imperial", opts.Units)
	assert.Equal(t, "de", opts.Lang)
	assert.Equal(t, 2500*time.Millisecond, opts.Timeout)
	assert.True(t, opts.Forecast)
	assert.True(t, opts.Extended)
}

func TestParseRejectsUnknownUnits(t *testing.T) {
	_, err := Parse([]string{"--units", "kelvin", "Moscow"}, defaults(), strings.NewReader(""), &bytes.Buffer{})

	var usageErr *model.UsageError
	require.ErrorAs(t, err, &usageErr)
	assert.Equal(t, model.ExitUsage, model.ExitCode(err))
}

func TestParseRejectsNonPositiveTimeout(t *testing.T) {
	_, err := Parse([]string{"--timeout", "0", "Moscow"}, defaults(), strings.NewReader(""), &bytes.Buffer{})

	var usageErr *model.UsageError
	require.ErrorAs(t, err, &usageErr)
}

func TestParseRequiresAPIKeyBeforeAnythingElse(t *testing.T) {
	noKey := defaults()
	noKey.APIKey = ""

	_, err := Parse([]string{"Moscow"}, noKey, strings.NewReader(""), &bytes.Buffer{})

	var usageErr *model.UsageError
	require.ErrorAs(t, err, &usageErr)
	assert.Contains(t, err.Error(), "OPENWEATHER_API_KEY")
}

func TestParseRejectsExtraPositionalArguments(t *testing.T) {
	_, err := Parse([]string{"Moscow", "Berlin"}, defaults(), strings.NewReader(""), &bytes.Buffer{})

	var usageErr *model.UsageError
	require.ErrorAs(t, err, &usageErr)
}

func TestParsePromptsForCityWhenMissing(t *testing.T) {
	out := &bytes.Buffer{}

	opts, err := Parse(nil, defaults(), strings.NewReader("  Saint Petersburg \n"), out)

	require.NoError(t, err)
	assert.Equal(t, "Saint Petersburg", opts.City)
	assert.NotEmpty(t, out.String())
}

func TestParseFailsWhenPromptAnswerIsEmpty(t *testing.T) {
	_, err := Parse(nil, defaults(), strings.NewReader("\n"), &bytes.Buffer{})

	var usageErr *model.UsageError
	require.ErrorAs(t, err, &usageErr)
}

func TestParseHelpReturnsErrHelp(t *testing.T) {
	out := &bytes.Buffer{}

	_, err := Parse([]string{"--help"}, defaults(), strings.NewReader(""), out)

	require.ErrorIs(t, err, pflag.ErrHelp)
	assert.Contains(t, out.String(), "Usage: yonse")
}

func TestParseNormalizesUnitsCase(t *testing.T) {
	opts, err := Parse([]string{"--units", "Imperial", "Moscow"}, defaults(), strings.NewReader(""), &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "imperial", opts.Units)
}
