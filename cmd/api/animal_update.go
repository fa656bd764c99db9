package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"ganaderia-dashboard/internal/forms/animalform"
	"ganaderia-dashboard/internal/platform/httpclient"

	"github.com/spf13/cobra"
)

var animalSets []string

var animalUpdateCmd = &cobra.Command{
	Use:   "animal-update [codigo_ani]",
	Short: "Edita un animal a través de la API (mismas reglas que el formulario)",
	Long: `Carga el animal y los grupos desde API_BASE_URL, aplica los cambios
y envía el PUT si la validación pasa.

Ejemplo:
  ganaderia animal-update 123 --set sexo_ani=Macho --set id_gru=2 --set codigo_fam=5`,
	Args: cobra.ExactArgs(1),
	RunE: runAnimalUpdate,
}

func init() {
	animalUpdateCmd.Flags().StringArrayVar(&animalSets, "set", nil, "campo=valor (repetible)")
}

func runAnimalUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	client, err := httpclient.NewWithBaseURL(cfg.Client.BaseURL, cfg.Client.Timeout)
	if err != nil {
		return err
	}

	c := animalform.NewController(animalform.NewAPIGateway(client), args[0], nil)
	if err := c.Load(ctx); err != nil {
		return errors.New(c.Message())
	}

	for _, kv := range animalSets {
		field, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("--set espera campo=valor: %q", kv)
		}
		if err := c.Set(ctx, strings.TrimSpace(field), value); err != nil {
			return err
		}
	}

	err = c.Submit(ctx)
	var ve *animalform.ValidationError
	if errors.As(err, &ve) {
		fields := make([]string, 0, len(ve.Fields))
		for f := range ve.Fields {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			fmt.Fprintf(out, "%s: %s\n", f, ve.Fields[f])
		}
		return errors.New("el formulario tiene errores")
	}
	if err != nil {
		log.Debug("actualización fallida", map[string]any{"error": err.Error()})
		return errors.New(c.Message())
	}

	fmt.Fprintln(out, c.Message())
	return nil
}
