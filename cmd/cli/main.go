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
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nestegg-cli",
		Short: "NestEgg CLI tool",
		Long:  `A command line interface for interacting with the NestEgg API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the NestEgg API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	var (
		summaryRange     string
		summaryReference string
		summaryTop       int
	)
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the period summary",
		Run: func(cmd *cobra.Command, args []string) {
			query := fmt.Sprintf("range=%s&top=%d", summaryRange, summaryTop)
			if summaryReference != "" {
				query += "&reference=" + summaryReference
			}
			getJSON("/api/v1/summary?" + query)
		},
	}
	summaryCmd.Flags().StringVar(&summaryRange, "range", "1M", "Range selector (1M, 3M, 6M, 1Y, YTD, Max)")
	summaryCmd.Flags().StringVar(&summaryReference, "reference", "", "Reference date (YYYY-MM-DD, default today)")
	summaryCmd.Flags().IntVar(&summaryTop, "top", 2, "Number of top movers per direction")
	rootCmd.AddCommand(summaryCmd)

	entryCmd := &cobra.Command{
		Use:   "entries",
		Short: "Ledger entry operations",
	}
	entryCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all ledger entries",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/entries")
		},
	})
	var entryJSON string
	addEntryCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a ledger entry from a JSON payload",
		Run: func(cmd *cobra.Command, args []string) {
			postJSON("/api/v1/entries", entryJSON)
		},
	}
	addEntryCmd.Flags().StringVar(&entryJSON, "json", "", "Entry payload, e.g. {\"kind\":\"expense\",\"date\":\"2025-03-14\",\"amount\":\"42.50\"}")
	_ = addEntryCmd.MarkFlagRequired("json")
	entryCmd.AddCommand(addEntryCmd)
	rootCmd.AddCommand(entryCmd)

	snapshotCmd := &cobra.Command{
		Use:   "snapshots",
		Short: "Net worth snapshot operations",
	}
	snapshotCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the snapshot history",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/snapshots")
		},
	})
	rootCmd.AddCommand(snapshotCmd)

	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Account operations",
	}
	accountsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/accounts")
		},
	})
	rootCmd.AddCommand(accountsCmd)

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

func postJSON(path, payload string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", strings.NewReader(payload))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func printResponse(resp *http.Response) {
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	printJSON(result)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to format response: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
