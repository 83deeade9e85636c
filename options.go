package clippings

import (
	"log/slog"
	"regexp"

	"golang.org/x/net/html"
)

const (
	// Texts shorter than this are never scored.
	defaultMinParagraphLength = 20
	// Unscored paragraph siblings join the content only when both bounds are
	// raised, e.g. MinNodeLength(80) and MaxLinkDensity(0.25).
	defaultMinNodeLength  = 0
	defaultMaxLinkDensity = 0
	// Max number of elements supported by the parser. Default: 0 (no limit)
	defaultMaxElemsToParse = 0
)

type Options struct {
	minParagraphLength int
	minNodeLength      int
	maxLinkDensity     float64
	stripUnlikelys     bool
	unlikelyPattern    *regexp.Regexp
	junkTags           []string
	maxElemsToParse    int
	retryMinLength     int
	html2text          func(htmlSrc string) string
	logger             *slog.Logger
	// readerable
	minContentLength  int
	minScore          float64
	visibilityChecker func(*html.Node) bool
}

type Option func(*Options)

func defaultOpts() *Options {
	return &Options{
		minParagraphLength: defaultMinParagraphLength,
		minNodeLength:      defaultMinNodeLength,
		maxLinkDensity:     defaultMaxLinkDensity,
		stripUnlikelys:     true,
		unlikelyPattern:    unlikelyCandidates,
		junkTags:           defaultJunkElems,
		maxElemsToParse:    defaultMaxElemsToParse,
		logger:             slog.Default(),
		minScore:           20,
		minContentLength:   140,
		visibilityChecker:  isNodeVisible,
	}
}

func MinParagraphLength(n int) Option {
	return func(o *Options) {
		o.minParagraphLength = n
	}
}

func MinNodeLength(n int) Option {
	return func(o *Options) {
		o.minNodeLength = n
	}
}

func MaxLinkDensity(d float64) Option {
	return func(o *Options) {
		o.maxLinkDensity = d
	}
}

// StripUnlikelys turns the boilerplate vocabulary pass on or off.
func StripUnlikelys(b bool) Option {
	return func(o *Options) {
		o.stripUnlikelys = b
	}
}

// UnlikelyPattern replaces the boilerplate vocabulary.
func UnlikelyPattern(rgx *regexp.Regexp) Option {
	return func(o *Options) {
		o.unlikelyPattern = rgx
	}
}

// JunkTags replaces the set of elements dropped from the content.
func JunkTags(tags ...string) Option {
	return func(o *Options) {
		o.junkTags = tags
	}
}

func MaxElemsToParse(n int) Option {
	return func(o *Options) {
		o.maxElemsToParse = n
	}
}

// Retry re-runs the extraction with one heuristic less each time the
// extracted text is shorter than minLength runes. Zero disables it.
func Retry(minLength int) Option {
	return func(o *Options) {
		o.retryMinLength = minLength
	}
}

func Html2Text(f func(string) string) Option {
	return func(o *Options) {
		o.html2text = f
	}
}

func Logger(l *slog.Logger) Option {
	return func(o *Options) {
		o.logger = l
	}
}

func MinContentLength(len int) Option {
	return func(o *Options) {
		o.minContentLength = len
	}
}

func MinScore(score float64) Option {
	return func(o *Options) {
		o.minScore = score
	}
}

func VisibilityChecker(f func(*html.Node) bool) Option {
	return func(o *Options) {
		o.visibilityChecker = f
	}
}
