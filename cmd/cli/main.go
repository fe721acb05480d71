package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "journaldraft-cli",
		Short: "JournalDraft CLI tool",
		Long:  `A command line interface for interacting with the JournalDraft API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the JournalDraft API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(accountCmd(), draftCmd(), journalCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}

	var code, name, accType, currency string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPost, "/api/v1/accounts/", map[string]string{
				"code":     code,
				"name":     name,
				"type":     accType,
				"currency": currency,
			})
		},
	}
	createCmd.Flags().StringVar(&code, "code", "", "Account code (numeric)")
	createCmd.Flags().StringVar(&name, "name", "", "Account name")
	createCmd.Flags().StringVar(&accType, "type", "asset", "Account type (asset, liability, equity, revenue, expense)")
	createCmd.Flags().StringVar(&currency, "currency", "USD", "Account currency")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodGet, "/api/v1/accounts/", nil)
		},
	}

	cmd.AddCommand(createCmd, listCmd)
	return cmd
}

func draftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Draft operations",
	}

	var currency, memo string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Open a new draft",
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPost, "/api/v1/drafts/", map[string]string{
				"currency": currency,
				"memo":     memo,
			})
		},
	}
	createCmd.Flags().StringVar(&currency, "currency", "USD", "Draft currency")
	createCmd.Flags().StringVar(&memo, "memo", "", "Draft memo")

	getCmd := &cobra.Command{
		Use:   "get <draft-id>",
		Short: "Show a draft with its current balance",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodGet, "/api/v1/drafts/"+args[0], nil)
		},
	}

	addLineCmd := &cobra.Command{
		Use:   "add-line <draft-id>",
		Short: "Append an empty line",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPost, "/api/v1/drafts/"+args[0]+"/lines", nil)
		},
	}

	setDebitCmd := &cobra.Command{
		Use:   "set-debit <draft-id> <line-id> <amount>",
		Short: "Set a line's debit amount",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPut, "/api/v1/drafts/"+args[0]+"/lines/"+args[1]+"/debit",
				map[string]string{"amount": args[2]})
		},
	}

	setCreditCmd := &cobra.Command{
		Use:   "set-credit <draft-id> <line-id> <amount>",
		Short: "Set a line's credit amount",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPut, "/api/v1/drafts/"+args[0]+"/lines/"+args[1]+"/credit",
				map[string]string{"amount": args[2]})
		},
	}

	setAccountCmd := &cobra.Command{
		Use:   "set-account <draft-id> <line-id> <account-id>",
		Short: "Select a line's account",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPut, "/api/v1/drafts/"+args[0]+"/lines/"+args[1]+"/account",
				map[string]string{"account_id": args[2]})
		},
	}

	balanceCmd := &cobra.Command{
		Use:   "balance <draft-id>",
		Short: "Evaluate the draft's balance",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodGet, "/api/v1/drafts/"+args[0]+"/balance", nil)
		},
	}

	submitCmd := &cobra.Command{
		Use:   "submit <draft-id>",
		Short: "Post a ready draft as a journal",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPost, "/api/v1/drafts/"+args[0]+"/submit", nil)
		},
	}

	cmd.AddCommand(createCmd, getCmd, addLineCmd, setDebitCmd, setCreditCmd, setAccountCmd, balanceCmd, submitCmd)
	return cmd
}

func journalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Posted journal operations",
	}

	getCmd := &cobra.Command{
		Use:   "get <journal-id>",
		Short: "Show a posted journal",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodGet, "/api/v1/journals/"+args[0], nil)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List posted journals",
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodGet, "/api/v1/journals/", nil)
		},
	}

	cmd.AddCommand(getCmd, listCmd)
	return cmd
}

func doRequest(method, path string, payload map[string]string) {
	client := &http.Client{Timeout: timeout}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			fmt.Printf("Failed to encode request: %v\n", err)
			os.Exit(1)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(respBody))
		os.Exit(1)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, respBody, "", "  "); err != nil {
		fmt.Println(string(respBody))
		return
	}
	fmt.Println(pretty.String())
}
