package ir

// Run status values recorded in the trace store.
const (
	RunRunning   = "running"
	RunSucceeded = "succeeded"
	RunFailed    = "failed"
)

// Run describes one invocation of the engine over a rule file and word list.
type Run struct {
	ID         string `json:"id"`
	RulesPath  string `json:"rules_path"`
	WordsPath  string `json:"words_path"`
	ScanPolicy string `json:"scan_policy"`
	RuleCount  int    `json:"rule_count"`
	WordCount  int    `json:"word_count"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// Application records one successful rule application to one word.
type Application struct {
	RunID     string `json:"run_id"`
	Seq       int64  `json:"seq"`
	RuleLine  int    `json:"rule_line"`
	Rule      string `json:"rule"`
	RuleHash  string `json:"rule_hash"`
	WordIndex int    `json:"word_index"`
	Position  int    `json:"position"`
	Before    string `json:"before"`
	After     string `json:"after"`
}
