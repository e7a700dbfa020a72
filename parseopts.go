package flt

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type depthopt int

// parsectx holds the settings for one call to Parse. It is also a
// ParseOption.
type parsectx struct {
	// maxdepth is the maximum nesting of groups and unary operators, or 0 for
	// no limit.
	maxdepth int
}

// MaxDepth limits how deeply groups and unary operators may nest. Each open
// bracket and each prefix operator is one level. An expression nesting more
// than n levels fails to parse with a TooDeep error. If n <= 0, there is no
// limit, which is the default.
func MaxDepth(n int) ParseOption {
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.maxdepth = int(o)
	if p.maxdepth < 0 {
		p.maxdepth = 0
	}
	return p
}

// ParsingPreset combines parsing options into one. Options given to Parse
// after a preset override it.
func ParsingPreset(opts ...ParseOption) ParseOption {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	return &p
}

func (o *parsectx) parseOption(p parsectx) parsectx {
	return *o
}
