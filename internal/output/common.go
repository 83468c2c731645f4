package output

// Output formats accepted by --output.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// TSVHeader is the canonical header row for text/TSV result output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "chrom\tdonor\tacceptor\tstrand\tgene\t" +
	"control_count\tsitdp43_count\trescue_count\t" +
	"control_replicates\tsitdp43_replicates\trescue_replicates\t" +
	"knockdown_fold\trescue_fold\t" +
	"stage1_passed\tstage2_passed\tstage3_passed"

// RejectTSVHeader heads the reject log written by the loader.
const RejectTSVHeader = "file\tline\tcolumn\tcode\treason"

// SummaryTSVHeader heads the per-gene summary table.
const SummaryTSVHeader = "gene\tcryptic_count\tsitdp43_associated\trescue_induced"
