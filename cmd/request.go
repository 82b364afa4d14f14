package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/lgctl/internal/application"
	"github.com/bnema/lgctl/internal/domain"
	"github.com/spf13/cobra"
)

func newRequestCmd(app *app) *cobra.Command {
	var payloadJSON string
	var requestID string

	cmd := &cobra.Command{
		Use:   "request <ssap-uri>",
		Short: "Send a raw ssap request and print the response payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var payload map[string]any
			if payloadJSON != "" {
				if err := json.Unmarshal([]byte(payloadJSON), &payload); err != nil {
					return fmt.Errorf("parse payload: %w", err)
				}
			}

			request := domain.NewRequest(requestID, args[0], payload)

			var response map[string]any
			err := app.run(cmd, "LG TV", "Sending request...", func(ctx context.Context, svc *application.Service) error {
				result := svc.Request(ctx, request, "Request failed")
				if !result.OK() {
					return errors.New(result.Err)
				}
				response = result.Payload
				return nil
			})
			if err != nil {
				return err
			}

			encoded, err := json.MarshalIndent(response, "", "  ")
			if err != nil {
				return fmt.Errorf("encode response: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
			return err
		},
	}

	cmd.Flags().StringVar(&payloadJSON, "payload", "", "request payload as a JSON object")
	cmd.Flags().StringVar(&requestID, "id", "req_1", "request id")

	return cmd
}
