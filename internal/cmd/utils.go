package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/tursodatabase/pentris/internal/flags"
	"github.com/tursodatabase/pentris/internal/settings"
	"github.com/tursodatabase/pentris/internal/tetris"
)

func printTable(header []string, data [][]string) {
	writeTable(os.Stdout, header, data)
}

func writeTable(w io.Writer, header []string, data [][]string) {
	table := tablewriter.NewWriter(w)

	table.SetHeader(header)
	table.SetHeaderLine(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(true)

	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetColumnSeparator("  ")
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("     ")

	table.AppendBulk(data)

	table.Render()
}

// readConfig loads the settings and applies the variant flag on top
func readConfig() (*settings.Settings, settings.Config, error) {
	s, err := settings.ReadSettings()
	if err != nil {
		return nil, settings.Config{}, err
	}
	config, err := s.Config()
	if err != nil {
		return nil, settings.Config{}, err
	}
	if variantFlag != "" {
		config.Variant = variantFlag
	}
	return s, config, nil
}

// engineLogger opens the engine log when --debug or log_file ask for one
func engineLogger(config settings.Config) (*log.Logger, io.Closer, error) {
	path := config.LogFile
	if flags.Debug() && path == "" {
		path = ".pentris.log"
	}
	return tetris.NewLogger(path)
}

func promptConfirmation(prompt string) (bool, error) {
	reader := bufio.NewReader(os.Stdin)
	for i := 0; i < 3; i++ {
		fmt.Printf("%s [y/N]: ", prompt)
		input, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(input)) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		}
		if err == io.EOF {
			return false, nil
		}
		fmt.Println("Please answer with yes or no.")
	}
	return false, fmt.Errorf("no valid answer")
}
