package core

import (
	"errors"
	"strings"
)

type (
	// CostRecord is a single synthetic suppression cost entry.
	// Records are values; once built they are never mutated.
	CostRecord struct {
		Region   string
		Category string
		Cost     float64
		Hours    float64
		Year     int
	}

	// AggregateKey identifies one aggregation bucket.
	AggregateKey struct {
		Region   string
		Category string
	}

	// AggregateBucket holds summed cost and hours for one (region, category) pair.
	AggregateBucket struct {
		Region     string
		Category   string
		TotalCost  float64
		TotalHours float64
	}
)

var (
	ErrEmptyRegion   = errors.New("empty region")
	ErrEmptyCategory = errors.New("empty category")
	ErrNegativeCost  = errors.New("negative cost")
	ErrNegativeHours = errors.New("negative hours")
	ErrInvalidYear   = errors.New("invalid year")
)

// NewCostRecord builds a validated CostRecord.
func NewCostRecord(region, category string, cost, hours float64, year int) (CostRecord, error) {
	r := CostRecord{
		Region:   strings.TrimSpace(region),
		Category: strings.TrimSpace(category),
		Cost:     cost,
		Hours:    hours,
		Year:     year,
	}
	if err := r.Validate(); err != nil {
		return CostRecord{}, err
	}
	return r, nil
}

func (r CostRecord) Validate() error {
	if strings.TrimSpace(r.Region) == "" {
		return ErrEmptyRegion
	}
	if strings.TrimSpace(r.Category) == "" {
		return ErrEmptyCategory
	}
	if r.Cost < 0 {
		return ErrNegativeCost
	}
	if r.Hours < 0 {
		return ErrNegativeHours
	}
	if r.Year <= 0 {
		return ErrInvalidYear
	}
	return nil
}

// Key returns the aggregation key for the record.
func (r CostRecord) Key() AggregateKey {
	return AggregateKey{Region: r.Region, Category: r.Category}
}

// Key returns the bucket's aggregation key.
func (b AggregateBucket) Key() AggregateKey {
	return AggregateKey{Region: b.Region, Category: b.Category}
}

func (b AggregateBucket) Validate() error {
	if strings.TrimSpace(b.Region) == "" {
		return ErrEmptyRegion
	}
	if strings.TrimSpace(b.Category) == "" {
		return ErrEmptyCategory
	}
	if b.TotalCost < 0 {
		return ErrNegativeCost
	}
	if b.TotalHours < 0 {
		return ErrNegativeHours
	}
	return nil
}
