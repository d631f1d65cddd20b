package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/yonekos/YonSeWeather-cli/internal/domain/model"
	"github.com/yonekos/YonSeWeather-cli/pkg/msg"
)

var validUnits = map[string]bool{
	"metric":   true,
	"imperial": true,
	"standard": true,
}

// Options holds the fully resolved invocation parameters.
type Options struct {
	City     string
	APIKey   string
	Units    string
	Lang     string
	Timeout  time.Duration
	Forecast bool
	Hourly   bool
	Extended bool
	Chart    bool
	NoColor  bool
	Verbose  bool
}

// Defaults carries the configured fallbacks applied when a flag is omitted.
type Defaults struct {
	Units   string
	Lang    string
	Timeout time.Duration
	APIKey  string
}

// Parse resolves flags and the positional city argument. When no city is
// given on the command line it is read interactively from in. Validation
// failures return a UsageError; --help returns pflag.ErrHelp.
func Parse(args []string, defaults Defaults, in io.Reader, out io.Writer) (*Options, error) {
	opts := &Options{}

	flags := pflag.NewFlagSet("yonse", pflag.ContinueOnError)
	flags.SetOutput(out)
	flags.Usage = func() {
		fmt.Fprintln(out, "Usage: yonse [flags] [city]")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Flags:")
		flags.PrintDefaults()
	}

	flags.StringVarP(&opts.APIKey, "api-key", "k", "", "OpenWeatherMap API key (falls back to OPENWEATHER_API_KEY)")
	flags.StringVarP(&opts.Units, "units", "u", defaults.Units, "units of measurement: metric, imperial or standard")
	flags.StringVarP(&opts.Lang, "lang", "l", defaults.Lang, "language code for condition descriptions")
	timeoutSeconds := flags.Float64P("timeout", "t", defaults.Timeout.Seconds(), "request timeout in seconds")
	flags.BoolVarP(&opts.Forecast, "forecast", "f", false, "show the 5 day forecast")
	flags.BoolVar(&opts.Hourly, "hourly", false, "show the next 24 hours, slot by slot")
	flags.BoolVarP(&opts.Extended, "extended", "x", false, "include UV index, air quality and weather alerts")
	flags.BoolVar(&opts.Chart, "chart", false, "plot an ASCII temperature chart for the next 24 hours")
	flags.BoolVar(&opts.NoColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		return nil, &model.UsageError{Message: err.Error()}
	}

	if *timeoutSeconds <= 0 {
		return nil, &model.UsageError{Message: msg.GetMessage("usage.timeout-invalid", flags.Lookup("timeout").Value.String())}
	}
	opts.Timeout = time.Duration(*timeoutSeconds * float64(time.Second))

	opts.Units = strings.ToLower(opts.Units)
	if !validUnits[opts.Units] {
		return nil, &model.UsageError{Message: msg.GetMessage("usage.units-invalid", opts.Units)}
	}

	if opts.APIKey == "" {
		opts.APIKey = defaults.APIKey
	}
	if opts.APIKey == "" {
		return nil, &model.UsageError{Message: msg.GetMessage("usage.api-key-missing", "OPENWEATHER_API_KEY")}
	}

	positional := flags.Args()
	if len(positional) > 1 {
		return nil, &model.UsageError{Message: msg.GetMessage("usage.too-many-args", strings.Join(positional, " "))}
	}

	if len(positional) == 1 {
		opts.City = strings.TrimSpace(positional[0])
	} else {
		city, err := promptCity(in, out)
		if err != nil {
			return nil, err
		}
		opts.City = city
	}

	if opts.City == "" {
		return nil, &model.UsageError{Message: msg.GetMessage("usage.city-missing")}
	}

	return opts, nil
}

func promptCity(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, msg.GetMessage("usage.city-prompt"))

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return "", &model.UsageError{Message: msg.GetMessage("usage.city-missing")}
	}
	return strings.TrimSpace(scanner.Text()), nil
}
