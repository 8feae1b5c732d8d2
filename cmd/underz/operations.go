package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/zoobzio/underz"
)

// operation is one subcommand: a named transformation of the decoded
// document.
type operation struct {
	name  string
	short string
	flags func(cmd *cobra.Command, a *app, o *opOptions)
	run   func(a *app, o *opOptions, doc any) (any, error)
}

// opOptions holds the flags an operation may declare.
type opOptions struct {
	key    string
	target string
	count  int
}

// operations returns every operation in the order list prints them.
func operations() []operation {
	return []operation{
		{
			name:  "uniq",
			short: "Drop repeated scalars from an array, keeping first occurrences",
			run: func(_ *app, _ *opOptions, doc any) (any, error) {
				items, err := scalarArray(doc)
				if err != nil {
					return nil, err
				}
				return underz.Uniq(items), nil
			},
		},
		{
			name:  "flatten",
			short: "Flatten nested arrays into one array",
			run: func(_ *app, _ *opOptions, doc any) (any, error) {
				items, err := asArray(doc)
				if err != nil {
					return nil, err
				}
				return underz.Flatten(items), nil
			},
		},
		{
			name:  "zip",
			short: "Merge an array of arrays position by position",
			run: func(_ *app, _ *opOptions, doc any) (any, error) {
				arrays, err := asArrays(doc, false)
				if err != nil {
					return nil, err
				}
				return underz.Zip(arrays...), nil
			},
		},
		{
			name:  "intersection",
			short: "Scalars of the first array present in every other array",
			run: func(_ *app, _ *opOptions, doc any) (any, error) {
				arrays, err := asArrays(doc, true)
				if err != nil {
					return nil, err
				}
				return underz.Intersection(arrays...), nil
			},
		},
		{
			name:  "difference",
			short: "Scalars of the first array absent from every other array",
			run: func(_ *app, _ *opOptions, doc any) (any, error) {
				arrays, err := asArrays(doc, true)
				if err != nil {
					return nil, err
				}
				if len(arrays) == 0 {
					return nil, fmt.Errorf("difference needs at least one array: %w", ErrUnexpectedShape)
				}
				return underz.Difference(arrays[0], arrays[1:]...), nil
			},
		},
		{
			name:  "shuffle",
			short: "Randomly permute an array",
			flags: func(cmd *cobra.Command, a *app, _ *opOptions) {
				// The config file may also supply a seed.
				cmd.Flags().Int64Var(&a.seed, "seed", 0, "seed for a reproducible permutation")
			},
			run: func(a *app, _ *opOptions, doc any) (any, error) {
				items, err := asArray(doc)
				if err != nil {
					return nil, err
				}
				if a.seeded {
					return underz.ShuffleWith(items, rand.New(rand.NewSource(a.seed))), nil //nolint:gosec
				}
				return underz.Shuffle(items), nil
			},
		},
		{
			name:  "pluck",
			short: "Extract one property from every object of an array",
			flags: requireKey,
			run: func(_ *app, o *opOptions, doc any) (any, error) {
				objects, err := asObjects(doc)
				if err != nil {
					return nil, err
				}
				return underz.Pluck(underz.Sequence(objects...), o.key), nil
			},
		},
		{
			name:  "sort-by",
			short: "Stable-sort an array of objects by one property, missing last",
			flags: requireKey,
			run: func(_ *app, o *opOptions, doc any) (any, error) {
				objects, err := asObjects(doc)
				if err != nil {
					return nil, err
				}
				return underz.SortByProperty(underz.Sequence(objects...), o.key), nil
			},
		},
		{
			name:  "extend",
			short: "Copy every property of later objects onto the first",
			run: func(_ *app, _ *opOptions, doc any) (any, error) {
				objects, err := asObjects(doc)
				if err != nil {
					return nil, err
				}
				if len(objects) == 0 {
					return map[string]any{}, nil
				}
				return underz.Extend(objects[0], objects[1:]...), nil
			},
		},
		{
			name:  "defaults",
			short: "Fill missing properties of the first object from later ones",
			run: func(_ *app, _ *opOptions, doc any) (any, error) {
				objects, err := asObjects(doc)
				if err != nil {
					return nil, err
				}
				if len(objects) == 0 {
					return map[string]any{}, nil
				}
				return underz.Defaults(objects[0], objects[1:]...), nil
			},
		},
		{
			name:  "contains",
			short: "Report whether an array or object holds a scalar value",
			flags: func(cmd *cobra.Command, _ *app, o *opOptions) {
				cmd.Flags().StringVar(&o.target, "target", "", "JSON scalar to look for")
				_ = cmd.MarkFlagRequired("target")
			},
			run: func(_ *app, o *opOptions, doc any) (any, error) {
				c, err := asCollection(doc)
				if err != nil {
					return nil, err
				}
				if err := checkScalars(c.Values()); err != nil {
					return nil, err
				}
				if !gjson.Valid(o.target) {
					return nil, fmt.Errorf("target %q is not JSON: %w", o.target, ErrUnexpectedShape)
				}
				target := gjson.Parse(o.target).Value()
				if !isScalar(target) {
					return nil, fmt.Errorf("target %s: %w", o.target, ErrNotScalar)
				}
				return underz.Contains(c, target), nil
			},
		},
		{
			name:  "reduce-sum",
			short: "Sum the numbers of an array or object",
			run: func(_ *app, _ *opOptions, doc any) (any, error) {
				c, err := asCollection(doc)
				if err != nil {
					return nil, err
				}
				if !underz.Every(c, isNumber) {
					return nil, fmt.Errorf("reduce-sum needs numbers only: %w", ErrUnexpectedShape)
				}
				return underz.Reduce(c, func(sum float64, v any) float64 {
					return sum + v.(float64)
				}), nil
			},
		},
		{
			name:  "first",
			short: "First element of an array, or the first --count elements",
			flags: countFlag,
			run: func(_ *app, o *opOptions, doc any) (any, error) {
				items, err := asArray(doc)
				if err != nil {
					return nil, err
				}
				if o.count == 0 {
					return underz.First(items), nil
				}
				return underz.FirstN(items, o.count), nil
			},
		},
		{
			name:  "last",
			short: "Last element of an array, or the last --count elements",
			flags: countFlag,
			run: func(_ *app, o *opOptions, doc any) (any, error) {
				items, err := asArray(doc)
				if err != nil {
					return nil, err
				}
				if o.count == 0 {
					return underz.Last(items), nil
				}
				return underz.LastN(items, o.count), nil
			},
		},
	}
}

func requireKey(cmd *cobra.Command, _ *app, o *opOptions) {
	cmd.Flags().StringVar(&o.key, "key", "", "property name")
	_ = cmd.MarkFlagRequired("key")
}

func countFlag(cmd *cobra.Command, _ *app, o *opOptions) {
	cmd.Flags().IntVar(&o.count, "count", 0, "number of elements to return instead of a single one")
}

func (op operation) command(a *app) *cobra.Command {
	o := &opOptions{}
	cmd := &cobra.Command{
		Use:   op.name,
		Short: op.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := a.readDocument(cmd.InOrStdin())
			if err != nil {
				return err
			}
			result, err := op.run(a, o, doc)
			if err != nil {
				return fmt.Errorf("%s: %w", op.name, err)
			}
			logResult(&a.log, op.name, result)
			return a.writeResult(cmd.OutOrStdout(), result)
		},
	}
	if op.flags != nil {
		op.flags(cmd, a, o)
	}
	return cmd
}

func lookupOperation(name string) (operation, bool) {
	for _, op := range operations() {
		if op.name == name {
			return op, true
		}
	}
	return operation{}, false
}
