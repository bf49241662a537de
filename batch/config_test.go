package batch

import (
	"strings"
	"testing"

	"github.com/Haisairova-Official/SVO-Extractor/container"
	_ "github.com/Haisairova-Official/SVO-Extractor/container/afb"
	_ "github.com/Haisairova-Official/SVO-Extractor/container/svo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatList(t *testing.T) {
	for _, c := range []struct {
		In  string
		Out FormatList
	}{
		{`svo`, FormatList{"svo"}},
		{`"afb"`, FormatList{"afb"}},
		{`svo afb`, FormatList{"svo afb"}},
		{`[svo, afb]`, FormatList{"svo", "afb"}},
		{`["svo", "afb"]`, FormatList{"svo", "afb"}},
		{`
  - svo
  - afb`, FormatList{"svo", "afb"}},
	} {
		t.Run(c.In, func(t *testing.T) {
			cfg, err := LoadConfig(strings.NewReader("formats: " + c.In))
			require.NoError(t, err)
			assert.Equal(t, c.Out, cfg.Formats)
		})
	}

	_, err := LoadConfig(strings.NewReader("formats: {svo: true}"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(`
in: ./data
out: ./extracted
log: extract.log
jobs: 4
formats: afb
dryRun: true
`))
	require.NoError(t, err)
	assert.Equal(t, &Config{
		In:      "./data",
		Out:     "./extracted",
		Log:     "extract.log",
		Jobs:    4,
		Formats: FormatList{"afb"},
		DryRun:  true,
	}, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadConfigUnknownField(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("in: a\nout: b\npatches: {}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field patches not found")
}

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{In: "a", Out: "b"}
	cfg.ApplyDefaults()
	assert.Equal(t, 1, cfg.Jobs)
	assert.Equal(t, FormatList(container.GetFormats()), cfg.Formats)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	for _, c := range []struct {
		Name string
		Cfg  Config
		Err  string
	}{
		{"NoIn", Config{Out: "b", Jobs: 1, Formats: FormatList{"svo"}}, "in and out are required"},
		{"NoOut", Config{In: "a", Jobs: 1, Formats: FormatList{"svo"}}, "in and out are required"},
		{"Jobs", Config{In: "a", Out: "b", Jobs: -1, Formats: FormatList{"svo"}}, "jobs must be at least 1, got -1"},
		{"NoFormats", Config{In: "a", Out: "b", Jobs: 1}, "no formats enabled"},
		{"UnknownFormat", Config{In: "a", Out: "b", Jobs: 1, Formats: FormatList{"svo", "zip"}}, `unknown format "zip"`},
		{"OK", Config{In: "a", Out: "b", Jobs: 2, Formats: FormatList{"svo"}}, ""},
	} {
		t.Run(c.Name, func(t *testing.T) {
			err := c.Cfg.Validate()
			if c.Err == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, c.Err)
			}
		})
	}
}
