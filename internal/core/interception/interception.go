// Package interception holds the EFSA 2020 repair-action crop interception
// table. This is part of the Functional Core - no I/O, only static data and
// pure accessors.
//
// Source: EFSA Panel on PPR (2020). EFSA Journal 2020;18(8):6119, Table 7.
// The table is a step function: one interception percentage applies across a
// band of BBCH stages. Entries whose percentage is still nil are stubs
// awaiting values from the paper and are skipped by the importer.
package interception

// Stage is one step of the interception function for a crop.
type Stage struct {
	BBCH   int
	Pct    *float64 // nil marks a stub still to be read from the paper
	Source string
}

// CropStages groups the interception steps for one SWASH crop.
type CropStages struct {
	SwashCropName string
	Stages        []Stage
}

const source = "EFSA 2020 Repair Action Table 7"

func pct(v float64) *float64 { return &v }

var table = []CropStages{
	// Annual arable crops: interception rises with canopy development and
	// falls again towards senescence.
	{
		SwashCropName: "Winter cereals",
		Stages: []Stage{
			{0, pct(0), source},
			{10, pct(25), source},
			{20, pct(50), source},
			{30, pct(70), source},
			{40, pct(80), source},
			{50, pct(90), source},
			{60, pct(90), source},
			{70, pct(80), source},
			{80, pct(80), source},
			{90, pct(70), source},
		},
	},
	{
		SwashCropName: "Spring cereals",
		Stages: []Stage{
			{0, pct(0), source},
			{10, pct(25), source},
			{20, pct(50), source},
			{30, pct(70), source},
			{40, pct(80), source},
			{50, pct(90), source},
			{60, pct(90), source},
			{70, pct(80), source},
			{80, pct(80), source},
			{90, pct(70), source},
		},
	},
	{
		SwashCropName: "Maize",
		Stages: []Stage{
			{0, pct(0), source},
			{10, pct(25), source},
			{20, pct(50), source},
			{30, pct(75), source},
			{40, pct(75), source},
			{50, pct(90), source},
			{60, pct(90), source},
			{70, pct(90), source},
			{80, pct(90), source},
			{90, pct(90), source},
		},
	},
	{
		SwashCropName: "Winter oilseed rape",
		Stages: []Stage{
			{0, pct(0), source},
			{10, pct(40), source},
			{20, pct(80), source},
			{30, pct(80), source},
			{40, pct(80), source},
			{50, pct(80), source},
			{60, pct(80), source},
			{70, pct(80), source},
			{80, pct(90), source},
			{90, pct(90), source},
		},
	},
	{
		SwashCropName: "Potatoes",
		Stages: []Stage{
			{0, pct(0), source},
			{10, pct(15), source},
			{20, pct(50), source},
			{30, pct(80), source},
			{40, pct(90), source},
			{50, pct(90), source},
			{60, pct(90), source},
			{70, pct(90), source},
			{80, pct(90), source},
			{90, pct(90), source},
		},
	},
	{
		SwashCropName: "Sugar beet",
		Stages: []Stage{
			{0, pct(0), source},
			{10, pct(20), source},
			{20, pct(70), source},
			{30, pct(90), source},
			{40, pct(90), source},
			{50, pct(90), source},
			{60, pct(90), source},
			{70, pct(90), source},
			{80, pct(90), source},
			{90, pct(90), source},
		},
	},
	// Permanent crops use the orchard BBCH breakpoints. Dormant and
	// post-harvest bands are still unverified against the paper.
	{
		SwashCropName: "Apples and pears",
		Stages: []Stage{
			{0, nil, source + " - STUB: dormant band unverified"},
			{51, pct(50), source},
			{60, pct(65), source},
			{71, pct(70), source},
			{81, pct(80), source},
			{91, nil, source + " - STUB: post-harvest band unverified"},
		},
	},
	{
		SwashCropName: "Vines",
		Stages: []Stage{
			{0, nil, source + " - STUB: dormant band unverified"},
			{51, pct(40), source},
			{60, pct(50), source},
			{71, pct(60), source},
			{81, pct(70), source},
			{91, nil, source + " - STUB: post-harvest band unverified"},
		},
	},
	// Grass keeps a near-constant canopy; the paper gives no per-stage values.
	{
		SwashCropName: "Grass",
		Stages: []Stage{
			{0, nil, source + " - STUB: fixed canopy, single band"},
		},
	},
}

// Table returns the interception entries grouped by crop, in a stable order.
func Table() []CropStages {
	return table
}

// StubCount returns how many stages still lack a percentage.
func StubCount() int {
	n := 0
	for _, cs := range table {
		for _, s := range cs.Stages {
			if s.Pct == nil {
				n++
			}
		}
	}
	return n
}
