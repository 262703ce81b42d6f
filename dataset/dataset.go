// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/neuroevo/tensor"
)

// DataSet maps labels to ordered value columns.
type DataSet struct {
	data map[string][]any
}

// New returns an empty DataSet.
func New() *DataSet {
	return &DataSet{data: make(map[string][]any)}
}

// AddValue appends value to label, creating the column if needed.
func (d *DataSet) AddValue(label string, value any) {
	d.data[label] = append(d.data[label], value)
}

// AddValues appends values to label, creating the column if needed.
func (d *DataSet) AddValues(label string, values ...any) {
	d.data[label] = append(d.data[label], values...)
}

// RemoveValue deletes the value at index from label.
//
// Errors:
//   - ErrIndexOutOfRange if label exists and index is outside its column.
func (d *DataSet) RemoveValue(label string, index int) error {
	col, ok := d.data[label]
	if !ok {
		return nil
	}
	if index < 0 || index >= len(col) {
		return fmt.Errorf("DataSet.RemoveValue(%q, %d): %w", label, index, ErrIndexOutOfRange)
	}
	d.data[label] = slices.Delete(col, index, index+1)

	return nil
}

// LabelSize returns the number of values under label, 0 if unknown.
func (d *DataSet) LabelSize(label string) int {
	return len(d.data[label])
}

// LabelValues returns a copy of label's column, empty if unknown.
func (d *DataSet) LabelValues(label string) []any {
	return slices.Clone(d.data[label])
}

// SetLabel replaces label's column with a copy of values.
func (d *DataSet) SetLabel(label string, values ...any) {
	d.data[label] = slices.Clone(values)
}

// RemoveLabel drops label and its values.
func (d *DataSet) RemoveLabel(label string) {
	delete(d.data, label)
}

// Labels returns every label in sorted order.
func (d *DataSet) Labels() []string {
	return slices.Sorted(maps.Keys(d.data))
}

// ToTensor packs the named columns into a [len(labels), maxSize] tensor where
// element (l, i) is value i of labels[l]. Shorter columns are zero-padded.
//
// Errors:
//   - ErrNoLabels if labels is empty.
//   - ErrEmptyLabel if every named column is empty.
//   - ErrInvalidValue if a value is not numeric.
func (d *DataSet) ToTensor(labels ...string) (*tensor.Tensor, error) {
	if len(labels) == 0 {
		return nil, ErrNoLabels
	}
	width := 0
	for _, l := range labels {
		width = max(width, d.LabelSize(l))
	}
	if width == 0 {
		return nil, fmt.Errorf("DataSet.ToTensor(%v): %w", labels, ErrEmptyLabel)
	}

	t, err := tensor.New(len(labels), width)
	if err != nil {
		return nil, err
	}
	for l, label := range labels {
		for i, v := range d.data[label] {
			f, err := toFloat(label, v)
			if err != nil {
				return nil, err
			}
			if err := t.Set(f, l, i); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}

// Samples returns one rank-1 tensor per row: sample i is
// [labels[0][i], labels[1][i], ...].
//
// Errors:
//   - ErrNoLabels if labels is empty.
//   - ErrEmptyLabel if the columns hold no values.
//   - ErrRaggedLabels if the columns differ in size.
//   - ErrInvalidValue if a value is not numeric.
func (d *DataSet) Samples(labels ...string) ([]*tensor.Tensor, error) {
	if len(labels) == 0 {
		return nil, ErrNoLabels
	}
	rows := d.LabelSize(labels[0])
	for _, l := range labels[1:] {
		if d.LabelSize(l) != rows {
			return nil, fmt.Errorf("DataSet.Samples(%q: %d != %d): %w", l, d.LabelSize(l), rows, ErrRaggedLabels)
		}
	}
	if rows == 0 {
		return nil, fmt.Errorf("DataSet.Samples(%v): %w", labels, ErrEmptyLabel)
	}

	out := make([]*tensor.Tensor, rows)
	row := make([]float64, len(labels))
	for i := 0; i < rows; i++ {
		for l, label := range labels {
			f, err := toFloat(label, d.data[label][i])
			if err != nil {
				return nil, err
			}
			row[l] = f
		}
		t, err := tensor.FromSlice(row...)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}

	return out, nil
}

// toFloat converts any Go numeric value to float64.
func toFloat(label string, v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("DataSet: label %q: %T: %w", label, v, ErrInvalidValue)
	}
}
