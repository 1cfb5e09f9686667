package workout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestReport_Message(t *testing.T) {
	tests := []struct {
		tag  string
		args []float64
		want string
	}{
		{
			tag:  "SWM",
			args: []float64{720, 1, 80, 25, 40},
			want: "Training type: Swimming; Duration: 1.000 h.; Distance: 0.994 km; " +
				"Avg. speed: 1.000 km/h; Calories burned: 336.000.",
		},
		{
			tag:  "RUN",
			args: []float64{15000, 1, 75},
			want: "Training type: Running; Duration: 1.000 h.; Distance: 9.750 km; " +
				"Avg. speed: 9.750 km/h; Calories burned: 797.805.",
		},
		{
			tag:  "WLK",
			args: []float64{9000, 1, 75, 180},
			want: "Training type: SportsWalking; Duration: 1.000 h.; Distance: 5.850 km; " +
				"Avg. speed: 5.850 km/h; Calories burned: 349.252.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			report, err := CreateRecordAndReport(tt.tag, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, report.Message())
			assert.Equal(t, tt.want, report.MessageFor(language.English))
		})
	}
}

func TestReport_MessageFor(t *testing.T) {
	report, err := CreateRecordAndReport("SWM", []float64{720, 1, 80, 25, 40})
	require.NoError(t, err)

	ru := report.MessageFor(language.Russian)
	assert.Equal(t, "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; "+
		"Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.", ru)

	// Regional variants resolve to the base language.
	assert.Equal(t, ru, report.MessageFor(language.MustParse("ru-RU")))

	// Unsupported languages fall back to English with "." separators.
	assert.Equal(t, report.Message(), report.MessageFor(language.German))
}

func TestMatchLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
	}{
		{"", language.English},
		{"en", language.English},
		{"en-GB", language.English},
		{"ru", language.Russian},
		{"ru-RU", language.Russian},
		{"de", language.English},
		{"not a tag!", language.English},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchLanguage(tt.in))
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0.000"},
		{1, "1.000"},
		{0.9936, "0.994"},
		{1234.5678, "1234.568"},
		{349.2517475, "349.252"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.v))
		})
	}
}

func TestSupportedLanguages_ReturnsCopy(t *testing.T) {
	langs := SupportedLanguages()
	require.Len(t, langs, 2)
	langs[0] = language.German
	assert.Equal(t, language.English, SupportedLanguages()[0])
}

func TestIsSupportedLanguage(t *testing.T) {
	assert.True(t, IsSupportedLanguage("en"))
	assert.True(t, IsSupportedLanguage("en-US"))
	assert.True(t, IsSupportedLanguage("ru-RU"))
	assert.False(t, IsSupportedLanguage("de"))
	assert.False(t, IsSupportedLanguage(""))
	assert.False(t, IsSupportedLanguage("???"))
}
