package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/carmitra/carmitra/internal/advisor"
	"github.com/carmitra/carmitra/internal/llm"
	"github.com/carmitra/carmitra/internal/model"
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive consultation with the car advisor",
	Long: `Chat starts an interactive consultation session. The advisor keeps
the last ten exchanges as context; pass a preferences file to ground
the conversation in the buyer's questionnaire answers.

Type 'exit' or press Ctrl-D to leave.

Example:
  carmitra chat --llm
  carmitra chat --llm --prefs prefs.yaml`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().StringVar(&prefsFile, "prefs", "", "preferences YAML file for buyer context")
	chatCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable the LLM provider")
	chatCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai)")
	chatCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	var prefs *model.Preferences
	if prefsFile != "" {
		p, err := loadPreferences()
		if err != nil {
			return err
		}
		prefs = &p
	}

	a := advisor.New(cfg, log)

	fmt.Println("CarMitra consultation. Ask anything about buying a car in India.")
	fmt.Println("Type 'exit' to leave.")
	fmt.Println()

	var history []llm.Exchange
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}

		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		if message == "exit" || message == "quit" {
			break
		}

		reply := a.Chat(cmd.Context(), message, history, prefs)
		fmt.Printf("\nadvisor> %s\n\n", reply)

		history = append(history, llm.Exchange{User: message, Assistant: reply})
		history = llm.TruncateHistory(history)
	}

	return scanner.Err()
}
