package resource

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadResolvesEnvPlaceholders(t *testing.T) {
	t.Setenv("PROPERTIES_TEST_VALUE", "from-env")

	Load([]byte(`
test:
  plain: "just a string"
  from-env: ${PROPERTIES_TEST_VALUE}
  with-default: ${PROPERTIES_TEST_MISSING:fallback}
  number: 7
`))

	assert.Equal(t, "just a string", GetString("test.plain"))
	assert.Equal(t, "from-env", GetString("test.from-env"))
	assert.Equal(t, "fallback", GetString("test.with-default"))
	assert.Equal(t, 7, GetInt("test.number"))
}

func TestSetTakesPrecedenceOverLoadedValues(t *testing.T) {
	Load([]byte(`override: {target: "from-file"}`))

	Set("override.target", "from-set")

	assert.Equal(t, "from-set", GetString("override.target"))
}

func TestTypedGetters(t *testing.T) {
	Load([]byte(`
typed:
  flag: true
  wait: 5s
  ratio: 0.25
`))

	assert.True(t, GetBool("typed.flag"))
	assert.Equal(t, 5*time.Second, GetDuration("typed.wait"))
	assert.InDelta(t, 0.25, GetFloat64("typed.ratio"), 0.001)
}
