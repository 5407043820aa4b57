package actions

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/osvk/uireplay/pkg/domain"
)

// stepParams are the payload keys the built-in handlers understand. The
// payload is an open mapping; each handler validates only the keys it
// requires and ignores the rest.
type stepParams struct {
	Value          string `mapstructure:"value"`
	Text           string `mapstructure:"text"`
	Key            string `mapstructure:"key"`
	QueryName      string `mapstructure:"queryName"`
	ConnectionName string `mapstructure:"connectionName"`
}

func decodeParams(rec *domain.ActionRecord) (stepParams, error) {
	var p stepParams
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &p,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return p, err
	}
	if err := dec.Decode(rec.Payload); err != nil {
		return p, fmt.Errorf("decode payload: %w", err)
	}
	return p, nil
}

// cleanConnectionTitle strips the zero-width spaces and expand arrows the
// capture side picks up from the tree item's visible text.
func cleanConnectionTitle(s string) string {
	s = strings.ReplaceAll(s, "\u200b", "")
	s = strings.TrimLeft(s, "▶▸► \t")
	return strings.TrimSpace(s)
}

// exportDestinationOption derives the destination option from whatever the
// record carries: visible text, raw value, or the option testId suffix.
func exportDestinationOption(p stepParams, testID string) string {
	if t := strings.TrimSpace(p.Text); t != "" {
		return t
	}
	if v := strings.TrimSpace(p.Value); v != "" {
		return v
	}
	switch {
	case strings.HasSuffix(testID, "-file"):
		return "file"
	case strings.HasSuffix(testID, "-document"):
		return "document"
	}
	return ""
}
