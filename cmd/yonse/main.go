package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/pflag"

	_ "github.com/yonekos/YonSeWeather-cli/configs"
	"github.com/yonekos/YonSeWeather-cli/internal/application/cli"
	"github.com/yonekos/YonSeWeather-cli/internal/application/render"
	"github.com/yonekos/YonSeWeather-cli/internal/domain/gateway/api"
	"github.com/yonekos/YonSeWeather-cli/internal/domain/model"
	"github.com/yonekos/YonSeWeather-cli/internal/domain/usecase/weather"
	pkghttp "github.com/yonekos/YonSeWeather-cli/pkg/http"
	"github.com/yonekos/YonSeWeather-cli/pkg/log"
	"github.com/yonekos/YonSeWeather-cli/pkg/msg"
	"github.com/yonekos/YonSeWeather-cli/pkg/resource"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	defaults := cli.Defaults{
		Units:   resource.GetString("weather.defaults.units"),
		Lang:    resource.GetString("weather.defaults.lang"),
		Timeout: time.Duration(resource.GetInt("weather.defaults.timeout-seconds")) * time.Second,
		APIKey:  resource.GetString("weather.api.key"),
	}

	opts, err := cli.Parse(args, defaults, in, out)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return model.ExitOK
		}
		fmt.Fprintln(errOut, err.Error())
		return model.ExitCode(err)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	if opts.Verbose {
		log.SetVerbose()
	}

	gateway := api.NewWeatherGateway(api.Config{
		BaseURL:          resource.GetString("weather.api.base-url"),
		APIKey:           opts.APIKey,
		CurrentPath:      resource.GetString("weather.api.current-path"),
		ForecastPath:     resource.GetString("weather.api.forecast-path"),
		AirPollutionPath: resource.GetString("weather.api.air-pollution-path"),
		OneCallPath:      resource.GetString("weather.api.onecall-path"),
		ClientOptions: pkghttp.ClientOptions{
			ConnectionTimeout: opts.Timeout,
			ReadTimeout:       opts.Timeout,
			Logger:            pkghttp.ZapHTTPLogger{},
		},
	})
	useCase := weather.NewWeatherUseCase(gateway)

	query := model.WeatherQuery{
		City:      opts.City,
		Units:     opts.Units,
		Lang:      opts.Lang,
		Extended:  opts.Extended,
		RequestID: uuid.NewString(),
	}

	snapshot, err := useCase.CurrentConditions(query)
	if err != nil {
		fmt.Fprintln(errOut, err.Error())
		return model.ExitCode(err)
	}

	fmt.Fprintln(out, render.FormatReport(snapshot))

	if opts.Forecast || opts.Hourly || opts.Chart {
		items, err := useCase.Forecast(query)
		if err != nil {
			fmt.Fprintln(errOut, err.Error())
			return model.ExitCode(err)
		}
		if opts.Forecast {
			fmt.Fprintln(out)
			fmt.Fprintln(out, render.FormatDailyForecast(items, opts.Units))
		}
		if opts.Hourly {
			fmt.Fprintln(out)
			fmt.Fprintln(out, render.FormatHourlyForecast(items, opts.Units))
		}
		if opts.Chart {
			fmt.Fprintln(out)
			fmt.Fprintln(out, render.TemperatureChart(items, opts.Units))
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, msg.GetMessage("app.farewell"))

	return model.ExitOK
}
