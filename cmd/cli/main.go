package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
	secret  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "treasury-cli",
		Short: "TuitionTrust treasury CLI tool",
		Long:  `A command line interface for driving the TuitionTrust treasury API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the treasury API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Reconcile incoming ledger payments into the donation store",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/donations/sync")
		},
	}

	donationsCmd := &cobra.Command{
		Use:   "donations",
		Short: "Show the recent donations feed",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/donations")
		},
	}

	outgoingCmd := &cobra.Command{
		Use:   "outgoing",
		Short: "Show outgoing payments to verified schools",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/donations/outgoing")
		},
	}

	balancesCmd := &cobra.Command{
		Use:   "balances",
		Short: "Show the treasury balances",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/donations/balances")
		},
	}

	transactionsCmd := &cobra.Command{
		Use:   "transactions [address]",
		Short: "Show incoming payments for an address",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/transactions?address=" + args[0])
		},
	}

	distributeCmd := &cobra.Command{
		Use:   "distribute",
		Short: "Pay out the configured amount to every eligible school",
		Run: func(cmd *cobra.Command, args []string) {
			postJSON("/api/v1/distributions", secret)
		},
	}
	distributeCmd.Flags().StringVar(&secret, "secret", "", "Distribution shared secret")

	trustlineCmd := &cobra.Command{
		Use:   "trustline",
		Short: "Ensure the treasury's issued-currency trust line exists",
		Run: func(cmd *cobra.Command, args []string) {
			postJSON("/api/v1/trustline", "")
		},
	}

	seedCmd := &cobra.Command{
		Use:   "seed-schools",
		Short: "Seed development school fixtures",
		Run: func(cmd *cobra.Command, args []string) {
			postJSON("/api/v1/schools/seed", "")
		},
	}

	rootCmd.AddCommand(syncCmd, donationsCmd, outgoingCmd, balancesCmd, transactionsCmd, distributeCmd, trustlineCmd, seedCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func getJSON(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func postJSON(path, bearer string) {
	client := &http.Client{Timeout: timeout}
	req, err := http.NewRequest(http.MethodPost, baseURL+path, nil)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func printResponse(resp *http.Response) {
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, strings.TrimSpace(string(body)))
		os.Exit(1)
	}

	var pretty map[string]any
	if err := json.Unmarshal(body, &pretty); err != nil {
		fmt.Println(strings.TrimSpace(string(body)))
		return
	}

	formatted, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		fmt.Println(strings.TrimSpace(string(body)))
		return
	}

	fmt.Println(string(formatted))
}
