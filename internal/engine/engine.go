package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/neoecg/neoecg/internal/axis"
	"github.com/neoecg/neoecg/internal/config"
	"github.com/neoecg/neoecg/internal/qtc"
	"github.com/neoecg/neoecg/internal/refdata"
	"github.com/neoecg/neoecg/internal/units"
)

// ReportIDGenerator generates report identifiers for output correlation.
// Implemented by UUIDGenerator (production) and FixedGenerator (tests).
type ReportIDGenerator interface {
	Generate() string
}

// UUIDGenerator issues random UUIDv4 report IDs.
type UUIDGenerator struct{}

// Generate implements ReportIDGenerator.
func (UUIDGenerator) Generate() string { return uuid.NewString() }

// FixedGenerator always returns the same ID. For deterministic tests.
type FixedGenerator struct {
	ID string
}

// Generate implements ReportIDGenerator.
func (g FixedGenerator) Generate() string { return g.ID }

// Input is one full set of bedside measurements. Box counts outside the
// soft UI bounds are accepted; a non-positive heart-rate count simply
// leaves HR and both QTc values undefined.
type Input struct {
	AgeDays  int
	HRBoxes  float64
	PRBoxes  float64
	QRSBoxes float64
	QTBoxes  float64
	Leads    axis.Leads
	Comment  string
}

// Engine evaluates measurement sets against the loaded reference tables.
// All fields are immutable after New, so one Engine may serve concurrent
// invocations without locking.
type Engine struct {
	resolver   *refdata.Resolver
	axisMatrix refdata.Table
	cal        units.Calibration
	thresholds qtc.Thresholds
	ids        ReportIDGenerator
}

// Option configures an Engine.
type Option func(*Engine)

// WithIDGenerator replaces the report ID generator. Tests use
// FixedGenerator for stable output.
func WithIDGenerator(g ReportIDGenerator) Option {
	return func(e *Engine) { e.ids = g }
}

// New builds an Engine over the given reference tables and configuration.
// An empty measurement table is valid: every band resolves unknown and the
// report degrades to Unknown statuses.
func New(measurements, axisMatrix refdata.Table, cfg config.Config, opts ...Option) *Engine {
	e := &Engine{
		resolver:   refdata.NewResolver(measurements, cfg.Columns),
		axisMatrix: axisMatrix,
		cal:        cfg.Calibration,
		thresholds: cfg.Thresholds,
		ids:        UUIDGenerator{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AxisMatrix returns the display-only axis reference table.
func (e *Engine) AxisMatrix() refdata.Table { return e.axisMatrix }

// Resolver returns the reference-band resolver, shared with the refs
// inspection commands.
func (e *Engine) Resolver() *refdata.Resolver { return e.resolver }

// Evaluate runs one full invocation: conversion, correction, axis
// classification, reference lookup, and report assembly. It never fails;
// every degraded path ends in an Unknown status, not an error.
func (e *Engine) Evaluate(in Input) *Report {
	// HR is rounded to one decimal before deriving RR and the QTc values.
	// That compounds rounding error slightly, but it reproduces the
	// established behavior this tool's reference tables were checked
	// against, and the tests lock it in.
	hr := units.Round1(e.cal.ToBpm(in.HRBoxes))
	prMs := units.Round1(e.cal.ToMs(in.PRBoxes))
	qrsMs := units.Round1(e.cal.ToMs(in.QRSBoxes))
	qtMs := units.Round1(e.cal.ToMs(in.QTBoxes))

	rr := qtc.RRSeconds(hr)
	bazett := units.Round1(qtc.Bazett(qtMs, rr))
	fridericia := units.Round1(qtc.Fridericia(qtMs, rr))

	hrBand := e.resolver.Band("HR", in.AgeDays)
	prBand := e.resolver.Band("PR", in.AgeDays)
	qrsBand := e.resolver.Band("QRS", in.AgeDays)
	qtBand := e.resolver.Band("QT", in.AgeDays)

	// QTc thresholds are clinical constants, not table lookups, and carry
	// no lower bound.
	bazettBand := refdata.Band{Low: units.Undefined(), High: e.thresholds.BazettHighMs}
	fridericiaBand := refdata.Band{Low: units.Undefined(), High: e.thresholds.FridericiaHighMs}

	axisResult := axis.Classify(in.Leads, in.AgeDays)

	rows := []Row{
		{
			Label:      "Age (days)",
			InputKind:  InputDays,
			InputValue: float64(in.AgeDays),
			Value:      units.Undefined(),
			Band:       refdata.UnknownBand(),
			Status:     StatusUnknown,
		},
		{
			Label:      "HR (from boxes)",
			InputKind:  InputBoxes,
			InputValue: in.HRBoxes,
			Value:      hr,
			Unit:       "bpm",
			Band:       hrBand,
			Status:     Classify(hr, hrBand),
		},
		{
			Label:      "PR",
			InputKind:  InputBoxes,
			InputValue: in.PRBoxes,
			Value:      prMs,
			Unit:       "ms",
			Band:       prBand,
			Status:     Classify(prMs, prBand),
		},
		{
			Label:      "QRS",
			InputKind:  InputBoxes,
			InputValue: in.QRSBoxes,
			Value:      qrsMs,
			Unit:       "ms",
			Band:       qrsBand,
			Status:     Classify(qrsMs, qrsBand),
		},
		{
			Label:      "QT",
			InputKind:  InputBoxes,
			InputValue: in.QTBoxes,
			Value:      qtMs,
			Unit:       "ms",
			Band:       qtBand,
			Status:     Classify(qtMs, qtBand),
		},
		{
			Label:      "QTc (Bazett)",
			InputKind:  InputNone,
			InputValue: units.Undefined(),
			Value:      bazett,
			Unit:       "ms",
			Band:       bazettBand,
			Status:     Classify(bazett, bazettBand),
		},
		{
			Label:      "QTc (Fridericia)",
			InputKind:  InputNone,
			InputValue: units.Undefined(),
			Value:      fridericia,
			Unit:       "ms",
			Band:       fridericiaBand,
			Status:     Classify(fridericia, fridericiaBand),
		},
	}

	return &Report{
		ID:      e.ids.Generate(),
		AgeDays: in.AgeDays,
		Rows:    rows,
		Axis:    axisResult,
		Alerts:  buildAlerts(hr, hrBand, bazett, fridericia, e.thresholds, axisResult.Category),
		Comment: in.Comment,
	}
}

// buildAlerts raises structured alerts for notable findings, in a fixed
// order: bradycardia, tachycardia, prolonged QTc (Bazett then Fridericia),
// then the axis alert for left or extreme deviation.
func buildAlerts(hr float64, hrBand refdata.Band, bazett, fridericia float64, th qtc.Thresholds, cat axis.Category) []Alert {
	var alerts []Alert

	if units.Defined(hr) && units.Defined(hrBand.Low) && hr < hrBand.Low {
		alerts = append(alerts, Alert{
			Level:   AlertWarning,
			Message: fmt.Sprintf("Bradycardia: HR %g bpm < %g bpm (age-based)", hr, hrBand.Low),
		})
	}
	if units.Defined(hr) && units.Defined(hrBand.High) && hr > hrBand.High {
		alerts = append(alerts, Alert{
			Level:   AlertWarning,
			Message: fmt.Sprintf("Tachycardia: HR %g bpm > %g bpm (age-based)", hr, hrBand.High),
		})
	}
	if units.Defined(bazett) && bazett > th.BazettHighMs {
		alerts = append(alerts, Alert{
			Level:   AlertCritical,
			Message: fmt.Sprintf("Prolonged QTc (Bazett): %g ms > %g ms", bazett, th.BazettHighMs),
		})
	}
	if units.Defined(fridericia) && fridericia > th.FridericiaHighMs {
		alerts = append(alerts, Alert{
			Level:   AlertCritical,
			Message: fmt.Sprintf("Prolonged QTc (Fridericia): %g ms > %g ms", fridericia, th.FridericiaHighMs),
		})
	}
	if cat == axis.LeftDeviation || cat == axis.ExtremeDeviation {
		alerts = append(alerts, Alert{
			Level:   AlertWarning,
			Message: fmt.Sprintf("Axis alert: %s", cat),
		})
	}

	return alerts
}
