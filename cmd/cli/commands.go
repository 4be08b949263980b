package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
)

var (
	addName string
	addTag  string
	addRole string
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(addPlayerCmd)
	rootCmd.AddCommand(metricsCmd)

	addPlayerCmd.Flags().StringVar(&addName, "name", "", "The player's in-game name")
	addPlayerCmd.Flags().StringVar(&addTag, "tag", "", "The player's tag line")
	addPlayerCmd.Flags().StringVar(&addRole, "role", "", "The player's preferred role(s)")
	addPlayerCmd.MarkFlagRequired("name")
	addPlayerCmd.MarkFlagRequired("tag")
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the players in the roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players")
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Get the roster statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/stats")
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh the roster from the sign-up sheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/refresh")
	},
}

var addPlayerCmd = &cobra.Command{
	Use:   "add-player",
	Short: "Add a single player to the roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := map[string]string{
			"name": addName,
			"tag":  addTag,
			"role": addRole,
		}
		return performPostRequest("/add-player", payload)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint string, payload any) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
