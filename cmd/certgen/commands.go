package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/issuer"
	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/pkg/tanks"
)

func lookupForm(cmd *cobra.Command) issuer.LookupForm {
	loc, _ := cmd.Flags().GetString("ubicacion")
	date, _ := cmd.Flags().GetString("fecha")
	eng, _ := cmd.Flags().GetString("ingeniero")
	return issuer.LookupForm{Location: loc, InspectionDate: date, Engineer: eng}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	is, err := issuer.NewFromConfig(cfg, logger)
	if err != nil {
		return err
	}

	preview, err := is.Prepare(cmd.Context(), lookupForm(cmd))
	if err != nil {
		return err
	}

	res, err := is.Issue(cmd.Context(), preview.Request)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Path)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	is, err := issuer.NewFromConfig(cfg, logger)
	if err != nil {
		return err
	}

	p, err := is.Prepare(cmd.Context(), lookupForm(cmd))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Ubicación:  %s\n", p.Request.LocationID)
	fmt.Fprintf(out, "Titular:    %s\n", p.Request.CustomerName)
	fmt.Fprintf(out, "Dirección:  %s\n", p.Request.Address)
	fmt.Fprintf(out, "Emisión:    %s\n", p.Emission.Display)
	if !p.KnownEngineer {
		fmt.Fprintf(out, "Ingeniero:  %s (código no reconocido)\n", p.Engineer)
	} else {
		fmt.Fprintf(out, "Ingeniero:  %s\n", p.Engineer)
	}
	for _, g := range p.Groups {
		fmt.Fprintf(out, "  - %s\n", g.Clause())
	}
	for _, s := range p.Skipped {
		fmt.Fprintf(out, "  ! %s/%s/%s: %s\n", s.Tank.Type, s.Tank.Capacity, s.Tank.Serial, s.Reason)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, tanks.ComposeSummary(p.Request.Tanks))
	return nil
}
