package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"membership/internal/membership/models"
	id "membership/pkg/domain"
)

func (a *application) submit(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("submit", flag.ContinueOnError)
	file := fs.String("file", "", "JSON request file (default stdin)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	in := stdin
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var req models.ApplyRequest
	if err := json.NewDecoder(in).Decode(&req); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}

	resp, err := a.service.ApplyForMembership(ctx, &req)
	if err != nil {
		return err
	}
	if err := writeJSON(stdout, toSubmitView(resp)); err != nil {
		return err
	}
	if !resp.IsSuccessful() {
		return errRejected
	}
	return nil
}

func (a *application) show(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	rawID := fs.String("id", "", "application id")
	token := fs.String("token", "", "access or update token")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	applicationID, err := id.ParseApplicationID(*rawID)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	app, err := a.service.GetApplication(ctx, applicationID, *token)
	if err != nil {
		return err
	}
	return writeJSON(stdout, toApplicationView(app))
}

func (a *application) cancel(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("cancel", flag.ContinueOnError)
	rawID := fs.String("id", "", "application id")
	token := fs.String("token", "", "update token")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	applicationID, err := id.ParseApplicationID(*rawID)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	app, err := a.service.CancelApplication(ctx, applicationID, *token)
	if err != nil {
		return err
	}
	return writeJSON(stdout, toApplicationView(app))
}

func (a *application) anonymize(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("anonymize", flag.ContinueOnError)
	rawID := fs.String("id", "", "application id")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	applicationID, err := id.ParseApplicationID(*rawID)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	if err := a.service.AnonymizeApplication(ctx, applicationID); err != nil {
		return err
	}
	return writeJSON(stdout, map[string]string{"id": applicationID.String(), "status": "anonymized"})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
