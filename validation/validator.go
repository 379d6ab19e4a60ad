package validation

import (
	"reflect"
	"slices"

	"github.com/erraggy/oaskit/openapi"
	"github.com/erraggy/oaskit/walker"
)

// Validator is an ordered list of rules. Validators are immutable once
// built; Adding returns a new one.
type Validator struct {
	rules []Rule
}

// Blank returns a validator with no rules.
func Blank() *Validator {
	return &Validator{}
}

// Default returns a validator preloaded with the built-in consistency rules.
func Default() *Validator {
	return Blank().Adding(DefaultRules()...)
}

// Adding returns a copy of v with rules appended.
func (v *Validator) Adding(rules ...Rule) *Validator {
	out := &Validator{rules: make([]Rule, 0, len(v.rules)+len(rules))}
	out.rules = append(out.rules, v.rules...)
	for _, r := range rules {
		if r != nil {
			out.rules = append(out.rules, r)
		}
	}
	return out
}

// Rules returns the rules in registration order.
func (v *Validator) Rules() []Rule {
	return slices.Clone(v.rules)
}

// Len returns the number of rules.
func (v *Validator) Len() int {
	return len(v.rules)
}

// Validate runs every rule over doc. It returns nil when no rule fails and
// an ErrorCollection otherwise. Any other error means the walk itself failed.
func (v *Validator) Validate(doc *openapi.Document, opts ...walker.Option) error {
	return v.ValidateNode(doc, doc, opts...)
}

// ValidateNode runs every rule over the tree rooted at root, with doc as the
// document every rule sees. Coding paths are relative to root.
func (v *Validator) ValidateNode(doc *openapi.Document, root any, opts ...walker.Option) error {
	errs, err := v.collect(doc, root, opts...)
	if err != nil {
		return err
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (v *Validator) collect(doc *openapi.Document, root any, opts ...walker.Option) (ErrorCollection, error) {
	d := newDispatch(v.rules)
	var errs ErrorCollection
	err := walker.Walk(root, func(node any, path walker.Path) walker.Action {
		for _, r := range d.rulesFor(reflect.TypeOf(node)) {
			errs = append(errs, r.Evaluate(doc, node, path)...)
		}
		return walker.Continue
	}, opts...)
	return errs, err
}

// dispatch indexes rules by the node types they apply to.
type dispatch struct {
	rules  []Rule
	byType map[reflect.Type][]Rule
}

func newDispatch(rules []Rule) *dispatch {
	return &dispatch{rules: rules, byType: make(map[reflect.Type][]Rule)}
}

func (d *dispatch) rulesFor(t reflect.Type) []Rule {
	if rules, ok := d.byType[t]; ok {
		return rules
	}
	var matched []Rule
	for _, r := range d.rules {
		subject := r.Subject()
		if t == subject || (subject.Kind() == reflect.Interface && t.Implements(subject)) {
			matched = append(matched, r)
		}
	}
	d.byType[t] = matched
	return matched
}

type config struct {
	validator *Validator
	walkOpts  []walker.Option
}

// Option configures the package-level Validate.
type Option func(*config)

// WithValidator selects the rules to run. The default is Default().
func WithValidator(v *Validator) Option {
	return func(c *config) {
		if v != nil {
			c.validator = v
		}
	}
}

// WithMaxDepth limits how deep the walk descends.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		c.walkOpts = append(c.walkOpts, walker.WithMaxDepth(depth))
	}
}

// Validate validates doc with the default validator, or the one given by
// WithValidator.
func Validate(doc *openapi.Document, opts ...Option) error {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.validator == nil {
		cfg.validator = Default()
	}
	return cfg.validator.Validate(doc, cfg.walkOpts...)
}
