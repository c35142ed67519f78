package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/etabo/mifugo-connect/internal/query"
)

var queryCmd = &cobra.Command{
	Use:   "query <text>",
	Short: "Interpret an SMS command and print the reply",
	Long: `Interpret a pastoralist SMS command against the current records and
print the reply, without the simulator's delivery delay.

Matching is keyword-based: the first animal and market names contained in
the text win, case-insensitively. "DROUGHT" anywhere returns the drought
advisory.

Examples:
  mifugo query "goat lodwar"
  mifugo query "CAMEL KAKUMA"
  mifugo query drought`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("empty query text")
	}

	reply := query.Respond(store.List(), text)
	logger.Debug("query interpreted", "input", text, "reply", reply)
	fmt.Println(reply)
	return nil
}
