// Package configs wires the embedded property and message catalogs into
// pkg/resource and pkg/msg. Importing it for side effects is enough:
//
//	import _ "github.com/yonekos/YonSeWeather-cli/configs"
//
// PROPERTIES_FILE_PATH and MESSAGES_FILE_PATH override the embedded files.
package configs

import (
	_ "embed"
	"os"

	"github.com/yonekos/YonSeWeather-cli/pkg/msg"
	"github.com/yonekos/YonSeWeather-cli/pkg/resource"
)

//go:embed application.yml
var applicationYML []byte

//go:embed messages.yml
var messagesYML []byte

func init() {
	if path, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok {
		resource.Init(path)
	} else {
		resource.Load(applicationYML)
	}

	if path, ok := os.LookupEnv("MESSAGES_FILE_PATH"); ok {
		msg.Init(path)
	} else {
		msg.Load(messagesYML)
	}
}
