// pkg/api/results_v1.go
package api

// ResultV1 is the stable JSON/JSONL schema for one junction in the final
// filtered set. Keep fields, names, and types stable. Add new fields only
// with ",omitempty".
type ResultV1 struct {
	Chrom    string `json:"chrom"`
	Donor    int    `json:"donor"`
	Acceptor int    `json:"acceptor"`
	Strand   string `json:"strand"`
	Gene     string `json:"gene,omitempty"`

	ControlCount   int `json:"control_count"`
	KnockdownCount int `json:"sitdp43_count"`
	RescueCount    int `json:"rescue_count"`

	ControlReplicates   int `json:"control_replicates"`
	KnockdownReplicates int `json:"sitdp43_replicates"`
	RescueReplicates    int `json:"rescue_replicates"`

	ControlMean   float64 `json:"control_mean"`
	KnockdownMean float64 `json:"sitdp43_mean"`
	RescueMean    float64 `json:"rescue_mean"`

	KnockdownFold float64 `json:"knockdown_fold"`
	RescueFold    float64 `json:"rescue_fold"`

	Stage1Passed bool `json:"stage1_passed"`
	Stage2Passed bool `json:"stage2_passed"`
	Stage3Passed bool `json:"stage3_passed"`
	Final        bool `json:"final"`
}

// GeneSummaryV1 is the stable schema for the per-gene summary table.
type GeneSummaryV1 struct {
	Gene                string `json:"gene"`
	CrypticCount        int    `json:"cryptic_count"`
	KnockdownAssociated int    `json:"sitdp43_associated"`
	RescueInduced       int    `json:"rescue_induced"`
}
