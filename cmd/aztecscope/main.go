// Command aztecscope inspects Aztec barcodes in image files: it prints the
// sampled module grid, the decoded symbol stream with bit provenance, or a
// structural summary of the module roles.
package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/barcodelab/aztecscope"
	"github.com/barcodelab/aztecscope/inspect"
	"github.com/barcodelab/aztecscope/locate"
	"github.com/barcodelab/aztecscope/structure"
	"github.com/barcodelab/aztecscope/symbol"
)

var (
	sampleSizeFlag int
	dimensionFlag  int
	cornersFlag    string
)

var rootCmd = &cobra.Command{
	Use:   "aztecscope",
	Short: "Aztec barcode structural inspector",
	Long: `Aztecscope decodes an Aztec barcode the transparent way: it exposes the
module grid, the structural role of every module, the codeword values, and
the exact bit range behind each decoded character.

The symbol is located automatically, or pass --corners to name the
quadrilateral yourself.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&sampleSizeFlag, "sample-size", 0,
		"side length in pixels of the resampled square (0 = default)")
	rootCmd.PersistentFlags().IntVar(&dimensionFlag, "dimension", 0,
		"authoritative module count; 0 infers it from the bullseye")
	rootCmd.PersistentFlags().StringVar(&cornersFlag, "corners", "",
		"symbol corners as x1,y1,x2,y2,x3,y3,x4,y4 (TL,TR,BR,BL); empty locates automatically")

	rootCmd.AddCommand(gridCmd, symbolsCmd, modulesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var gridCmd = &cobra.Command{
	Use:   "grid <image-file>",
	Short: "Print the sampled module grid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := inspectFile(args[0])
		if err != nil {
			return err
		}
		cmd.Print(res.Grid.String())
		printGeometry(cmd, res)
		return nil
	},
}

var symbolsCmd = &cobra.Command{
	Use:   "symbols <image-file>",
	Short: "Print the decoded symbol stream with bit provenance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := inspectFile(args[0])
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"#", "Kind", "Detail", "Value", "Bits", "Text"})
		table.SetBorder(false)
		for _, s := range res.Symbols {
			sp := s.Span()
			table.Append([]string{
				strconv.Itoa(sp.Index),
				symbolKind(s),
				symbolDetail(s),
				fmt.Sprintf("%d", sp.Value),
				fmt.Sprintf("[%d,%d)", sp.StartBit, sp.EndBit),
				symbolText(s),
			})
		}
		table.Render()

		cmd.Printf("\ntext: %q\n", res.Text)
		printGeometry(cmd, res)
		return nil
	},
}

var modulesCmd = &cobra.Command{
	Use:   "modules <image-file>",
	Short: "Print the structural classification summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := inspectFile(args[0])
		if err != nil {
			return err
		}

		counts := map[structure.ModuleType]int{}
		for _, row := range res.Modules {
			for _, m := range row {
				counts[m.Type]++
			}
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Role", "Modules"})
		table.SetBorder(false)
		order := []structure.ModuleType{
			structure.Finder, structure.Orientation, structure.Mode,
			structure.Alignment, structure.Data, structure.ECC, structure.Padding,
		}
		for _, t := range order {
			table.Append([]string{t.String(), strconv.Itoa(counts[t])})
		}
		table.Render()

		printGeometry(cmd, res)
		return nil
	},
}

// inspectFile loads the image, resolves the symbol corners (flag or
// automatic localization), and runs the inspection pipeline.
func inspectFile(path string) (*inspect.Result, error) {
	img, err := loadImage(path)
	if err != nil {
		return nil, err
	}

	opts := &aztecscope.Options{
		SampleSize: sampleSizeFlag,
		Dimension:  dimensionFlag,
	}

	var corners [4]aztecscope.Point
	if cornersFlag != "" {
		corners, err = parseCorners(cornersFlag)
		if err != nil {
			return nil, err
		}
	} else {
		loc, err := locate.Localize(img)
		if err != nil {
			return nil, err
		}
		corners = loc.Corners
		if opts.Dimension == 0 {
			opts.Dimension = loc.Dimension
		}
	}

	return inspect.Inspect(img, corners, opts)
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// parseCorners parses eight comma-separated coordinates in TL,TR,BR,BL
// order.
func parseCorners(s string) ([4]aztecscope.Point, error) {
	var corners [4]aztecscope.Point
	parts := strings.Split(s, ",")
	if len(parts) != 8 {
		return corners, fmt.Errorf("--corners needs 8 comma-separated values, got %d", len(parts))
	}
	for i := 0; i < 4; i++ {
		x, err := strconv.ParseFloat(strings.TrimSpace(parts[2*i]), 64)
		if err != nil {
			return corners, fmt.Errorf("corner %d x: %w", i, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(parts[2*i+1]), 64)
		if err != nil {
			return corners, fmt.Errorf("corner %d y: %w", i, err)
		}
		corners[i] = aztecscope.Point{X: x, Y: y}
	}
	return corners, nil
}

func printGeometry(cmd *cobra.Command, res *inspect.Result) {
	g := res.Geometry
	family := "full-range"
	if g.Compact {
		family = "compact"
	}
	cmd.Printf("\n%s, %d layers, %d modules/side\n", family, g.Layers, res.Grid.Size())
	cmd.Printf("codewords: %d data + %d ecc, %d bits each, %d padding bits\n",
		g.DataCodewords, g.ECCCodewords, g.CodewordBits, g.PaddingBits)
	if g.Heuristic {
		cmd.Println("warning: mode message unreadable, data/ecc split estimated")
	}
}

func symbolKind(s symbol.Symbol) string {
	switch s.(type) {
	case symbol.Character:
		return "char"
	case symbol.Shift:
		return "shift"
	case symbol.Latch:
		return "latch"
	case symbol.BinaryShift:
		return "bin-shift"
	case symbol.BinaryByte:
		return "byte"
	case symbol.Flag:
		return "flag"
	case symbol.ECC:
		return "ecc"
	default:
		return "?"
	}
}

func symbolDetail(s symbol.Symbol) string {
	switch v := s.(type) {
	case symbol.Character:
		if v.Undecodable {
			return v.Mode.String() + " (undecodable)"
		}
		return v.Mode.String()
	case symbol.Shift:
		return fmt.Sprintf("%s>%s", v.From, v.To)
	case symbol.Latch:
		return fmt.Sprintf("%s>%s", v.From, v.To)
	case symbol.BinaryShift:
		return fmt.Sprintf("%d bytes", v.Length)
	case symbol.Flag:
		if v.ECI >= 0 {
			return fmt.Sprintf("FLG(%d) ECI %d", v.N, v.ECI)
		}
		return fmt.Sprintf("FLG(%d)", v.N)
	default:
		return ""
	}
}

func symbolText(s symbol.Symbol) string {
	switch v := s.(type) {
	case symbol.Character:
		return strconv.Quote(v.Text)
	case symbol.BinaryByte:
		return strconv.Quote(v.Text)
	default:
		return ""
	}
}
