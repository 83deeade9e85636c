package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	clippings "github.com/giulianopz/go-clippings"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the library options. Unset fields keep the library defaults.
type fileConfig struct {
	MinParagraphLength *int     `yaml:"minParagraphLength"`
	MinNodeLength      *int     `yaml:"minNodeLength"`
	MaxLinkDensity     *float64 `yaml:"maxLinkDensity"`
	StripUnlikelys     *bool    `yaml:"stripUnlikelys"`
	UnlikelyPattern    string   `yaml:"unlikelyPattern"`
	JunkTags           []string `yaml:"junkTags"`
	MaxElemsToParse    *int     `yaml:"maxElemsToParse"`
	Retry              *int     `yaml:"retry"`

	Readerable struct {
		MinContentLength *int     `yaml:"minContentLength"`
		MinScore         *float64 `yaml:"minScore"`
	} `yaml:"readerable"`
}

func loadConfigFile(path string) (fileConfig, error) {
	var fc fileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fc, fmt.Errorf("parse yaml: %w", err)
	}
	return fc, nil
}

func (fc fileConfig) options() ([]clippings.Option, error) {
	var opts []clippings.Option
	if fc.MinParagraphLength != nil {
		opts = append(opts, clippings.MinParagraphLength(*fc.MinParagraphLength))
	}
	if fc.MinNodeLength != nil {
		opts = append(opts, clippings.MinNodeLength(*fc.MinNodeLength))
	}
	if fc.MaxLinkDensity != nil {
		opts = append(opts, clippings.MaxLinkDensity(*fc.MaxLinkDensity))
	}
	if fc.StripUnlikelys != nil {
		opts = append(opts, clippings.StripUnlikelys(*fc.StripUnlikelys))
	}
	if fc.UnlikelyPattern != "" {
		rgx, err := regexp.Compile(fc.UnlikelyPattern)
		if err != nil {
			return nil, fmt.Errorf("invalid unlikelyPattern: %w", err)
		}
		opts = append(opts, clippings.UnlikelyPattern(rgx))
	}
	if fc.JunkTags != nil {
		opts = append(opts, clippings.JunkTags(fc.JunkTags...))
	}
	if fc.MaxElemsToParse != nil {
		opts = append(opts, clippings.MaxElemsToParse(*fc.MaxElemsToParse))
	}
	if fc.Retry != nil {
		opts = append(opts, clippings.Retry(*fc.Retry))
	}
	if fc.Readerable.MinContentLength != nil {
		opts = append(opts, clippings.MinContentLength(*fc.Readerable.MinContentLength))
	}
	if fc.Readerable.MinScore != nil {
		opts = append(opts, clippings.MinScore(*fc.Readerable.MinScore))
	}
	return opts, nil
}
