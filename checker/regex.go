// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lattice Authors

package checker

import (
	"fmt"
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/latticeauth/abac"
)

// defaultCacheSize is the RegexChecker's default compiled-pattern LRU
// bound (spec §4.3).
const defaultCacheSize = 1024

// defaultStartTag and defaultEndTag delimit the regex section inside a
// policy pattern when no tags are configured.
const (
	defaultStartTag = "<"
	defaultEndTag   = ">"
)

// RegexOption configures a RegexChecker.
type RegexOption func(*regexConfig)

type regexConfig struct {
	cacheSize int
	startTag  string
	endTag    string
}

// WithCacheSize overrides the compiled-pattern LRU bound.
func WithCacheSize(n int) RegexOption {
	return func(c *regexConfig) { c.cacheSize = n }
}

// WithTags overrides the delimiters marking the regex section of a
// pattern.
func WithTags(start, end string) RegexOption {
	return func(c *regexConfig) {
		c.startTag = start
		c.endTag = end
	}
}

// RegexChecker fits a pattern against a value by compiling the regex
// section bounded by start/end tags (default "<"/">") and testing a
// full match; a pattern with no tagged section falls back to exact
// equality. Compiled regexes are cached in a bounded, thread-safe LRU.
type RegexChecker struct {
	cfg   regexConfig
	cache *lru.Cache[string, *regexp.Regexp]
}

// NewRegexChecker builds a RegexChecker. cacheSize <= 0 uses the default
// of 1024 entries.
func NewRegexChecker(opts ...RegexOption) (*RegexChecker, error) {
	cfg := regexConfig{
		cacheSize: defaultCacheSize,
		startTag:  defaultStartTag,
		endTag:    defaultEndTag,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.cacheSize <= 0 {
		cfg.cacheSize = defaultCacheSize
	}

	cache, err := lru.New[string, *regexp.Regexp](cfg.cacheSize)
	if err != nil {
		return nil, abac.NewInvalidArgument("checker: building regex cache: %v", err)
	}

	return &RegexChecker{cfg: cfg, cache: cache}, nil
}

// Kind implements Checker.
func (*RegexChecker) Kind() Kind { return KindRegex }

// Fits implements StringChecker.
func (c *RegexChecker) Fits(pattern, value string) (bool, error) {
	prefix, inner, suffix, tagged := c.taggedSection(pattern)
	if !tagged {
		return pattern == value, nil
	}

	re, err := c.compile(pattern, prefix, inner, suffix)
	if err != nil {
		return false, abac.NewPolicyEvaluationError(fmt.Errorf("regex checker: compiling %q: %w", pattern, err))
	}
	return re.MatchString(value), nil
}

// taggedSection locates the regex section bounded by the first start tag
// and the last end tag following it, and returns the literal prefix
// before the start tag, the inner regex text, and the literal suffix
// after the end tag. The tagged section need not span the whole
// pattern — "book:<.+>" has prefix "book:", inner ".+", suffix "".
func (c *RegexChecker) taggedSection(pattern string) (prefix, inner, suffix string, tagged bool) {
	st := strings.Index(pattern, c.cfg.startTag)
	if st < 0 {
		return "", "", "", false
	}
	innerStart := st + len(c.cfg.startTag)
	et := strings.LastIndex(pattern[innerStart:], c.cfg.endTag)
	if et < 0 {
		return "", "", "", false
	}
	innerEnd := innerStart + et
	return pattern[:st], pattern[innerStart:innerEnd], pattern[innerEnd+len(c.cfg.endTag):], true
}

// compile returns a cached compiled regex for the full pattern,
// compiling and caching it on a miss. Any literal prefix/suffix around
// the tagged section is quoted so it matches literally; the whole
// expression is anchored so MatchString behaves like a full-string
// match.
func (c *RegexChecker) compile(pattern, prefix, inner, suffix string) (*regexp.Regexp, error) {
	if re, ok := c.cache.Get(pattern); ok {
		return re, nil
	}
	re, err := regexp.Compile("^" + regexp.QuoteMeta(prefix) + "(?:" + inner + ")" + regexp.QuoteMeta(suffix) + "$")
	if err != nil {
		return nil, err
	}
	c.cache.Add(pattern, re)
	return re, nil
}
