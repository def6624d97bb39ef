package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/mcotrim/advertencia/pkg/record"
)

var fillOutDir string

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Preenche uma advertência no terminal e exporta o PDF",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log, err := buildLogger(cfg.Log)
		if err != nil {
			return err
		}
		defer log.Sync()

		rec, err := fillRecord()
		if errors.Is(err, terminal.InterruptErr) {
			fmt.Println("cancelado")
			return nil
		}
		if err != nil {
			return err
		}

		outDir := cfg.Export.OutputDir
		if fillOutDir != "" {
			outDir = fillOutDir
		}
		path, err := runExport(cmd.Context(), cfg, log, rec, outDir)
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fillCmd)
	fillCmd.Flags().StringVar(&fillOutDir, "out", "", "diretório de saída (padrão da configuração)")
}

// fillRecord walks the same fields as the web form, feeding every answer
// through the reducer so masking and truncation behave identically.
func fillRecord() (record.WarningRecord, error) {
	rec := record.New(time.Now())

	ask := func(field, message, def string, opts ...survey.AskOpt) error {
		var out string
		prompt := &survey.Input{Message: message, Default: def}
		if err := survey.AskOne(prompt, &out, opts...); err != nil {
			return err
		}
		rec = record.Apply(rec, record.SetField{Name: field, Value: out})
		return nil
	}

	type step struct {
		field   string
		message string
		def     string
		opts    []survey.AskOpt
	}
	steps := []step{
		{record.FieldCompany, "Empregadora:", "", required()},
		{record.FieldCompanyCNPJ, "CNPJ:", "", digitsExactly(14, "CNPJ")},
		{record.FieldEmployee, "Funcionário(a):", "", required()},
		{record.FieldEmployeeCPF, "CPF:", "", digitsExactly(11, "CPF")},
		{record.FieldRole, "Função:", "", required()},
		{record.FieldManager, "Responsável:", "", required()},
		{record.FieldManagerRole, "Cargo do responsável:", "", required()},
		{record.FieldDate, "Data da ocorrência (AAAA-MM-DD):", rec.Date, required()},
		{record.FieldTime, "Hora da ocorrência (HH:MM):", rec.Time, required()},
	}
	for _, s := range steps {
		if err := ask(s.field, s.message, s.def, s.opts...); err != nil {
			return record.WarningRecord{}, err
		}
	}

	var severity string
	if err := survey.AskOne(&survey.Select{
		Message: "Gravidade:",
		Options: severityOptions(),
		Default: string(rec.Severity),
	}, &severity); err != nil {
		return record.WarningRecord{}, err
	}
	rec = record.Apply(rec, record.SetField{Name: record.FieldSeverity, Value: severity})

	var description string
	if err := survey.AskOne(&survey.Multiline{
		Message: fmt.Sprintf("Descrição da ocorrência (até %d caracteres):", record.MaxDescriptionLen),
	}, &description, required()...); err != nil {
		return record.WarningRecord{}, err
	}
	rec = record.Apply(rec, record.SetField{Name: record.FieldDescription, Value: description})

	for i := 0; i < record.MaxWitnesses; i++ {
		var add bool
		if err := survey.AskOne(&survey.Confirm{
			Message: "Adicionar testemunha?",
		}, &add); err != nil {
			return record.WarningRecord{}, err
		}
		if !add {
			break
		}
		var name string
		if err := survey.AskOne(&survey.Input{Message: "Nome da testemunha:"}, &name, required()...); err != nil {
			return record.WarningRecord{}, err
		}
		if i >= len(rec.Witnesses) {
			rec = record.Apply(rec, record.AddWitness{})
		}
		rec = record.Apply(rec, record.UpdateWitness{ID: rec.Witnesses[i].ID, Name: name})
	}

	if errs := rec.Validate(); errs != nil {
		return record.WarningRecord{}, fmt.Errorf("registro incompleto: %v", errs)
	}
	return rec, nil
}

func severityOptions() []string {
	out := make([]string, 0, len(record.Severities()))
	for _, s := range record.Severities() {
		out = append(out, string(s))
	}
	return out
}

func required() []survey.AskOpt {
	return []survey.AskOpt{survey.WithValidator(survey.Required)}
}

// digitsExactly accepts any punctuation but demands the exact digit count,
// matching what the mask strips.
func digitsExactly(want int, label string) []survey.AskOpt {
	return []survey.AskOpt{survey.WithValidator(func(ans interface{}) error {
		s, _ := ans.(string)
		n := 0
		for _, r := range s {
			if r >= '0' && r <= '9' {
				n++
			}
		}
		if n != want {
			return fmt.Errorf("%s deve conter %d dígitos", label, want)
		}
		return nil
	})}
}
