package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/pkg/profile"

	"github.com/armkit/a64x/codec"
	"github.com/armkit/a64x/convert"
	"github.com/armkit/a64x/disasm"
	"github.com/armkit/a64x/explore"
	"github.com/armkit/a64x/isa"
)

// ANSI rendering for the three bit classes.
const (
	colorLegal     = "\033[1;33m"
	colorViolation = "\033[1;31m"
	colorReset     = "\033[0m"
)

func main() {
	var groupName string
	var summary bool
	var describe string
	var vary string
	var lock string
	var limit int
	var step uint
	var mode string
	var interactive bool
	var profiling bool

	flag.StringVar(&groupName, "group", "", "Explore an ISA group")
	flag.BoolVar(&summary, "summary", false, "Show summary of all encodings")
	flag.StringVar(&describe, "describe", "", "Show summary for a single opcode")
	flag.StringVar(&vary, "vary", "", "Comma-separated fields to vary (default: all)")
	flag.StringVar(&lock, "lock", "", "Comma-separated field=value locks")
	flag.IntVar(&limit, "limit", 32, "Max encodings to print")
	flag.UintVar(&step, "step", 4, "Step for sweeping large fields")
	flag.StringVar(&mode, "convert", "", "Convert 'hex' to asm or 'asm' to hex")
	flag.BoolVar(&interactive, "i", false, "Start interactive converter")
	flag.BoolVar(&profiling, "profile", false, "Enable CPU profiling")

	flag.Parse()

	if profiling {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	cat, err := isa.NewCatalog(isa.Groups, isa.Aliases)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	cv := convert.New()
	ex := &explore.Explorer{
		Catalog: cat,
		Decoder: disasm.A64{},
	}

	var locks isa.Locks
	if len(lock) != 0 {
		locks, err = explore.ParseLocks(strings.Split(lock, ","))
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
	}

	req := explore.Request{
		Locks: locks,
		Step:  uint32(step),
		Limit: limit,
	}
	if len(vary) != 0 {
		req.Vary = strings.Split(vary, ",")
	}

	switch {
	case len(mode) != 0:
		if flag.NArg() != 1 {
			log.Fatalf("%v: -convert requires a value", os.Args[0])
		}
		var res convert.Result
		if mode == "hex" {
			res, err = cv.HexToAsm(flag.Arg(0))
		} else {
			res, err = cv.AsmToHex(flag.Arg(0))
		}
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
		printResult(res)
	case interactive:
		runInteractive(cv)
	case summary:
		printSummary(cat)
	case len(describe) != 0:
		describeOpcode(cat, describe, req.Locks)
	case len(groupName) != 0:
		rows, gerr := ex.Group(groupName, req)
		if gerr != nil {
			log.Fatalf("%v: %v", os.Args[0], gerr)
		}
		var last *isa.Descriptor
		for desc, row := range rows {
			if desc != last {
				printHeader(cat, desc, req.Locks)
				last = desc
			}
			printRow(desc, row)
		}
	case flag.NArg() == 1:
		desc, rows, oerr := ex.Opcode(flag.Arg(0), req)
		if oerr != nil {
			log.Fatalf("%v: %v", os.Args[0], oerr)
		}
		printHeader(cat, desc, req.Locks)
		for row := range rows {
			printRow(desc, row)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// printHeader prints a descriptor's summary block before its rows.
func printHeader(cat *isa.Catalog, desc *isa.Descriptor, locks isa.Locks) {
	fmt.Printf("\n=== Exploring %v ===\n", desc.Name)
	fmt.Printf("  Group:   %v\n", desc.Group)
	fmt.Printf("  Desc:    %v\n", desc.Desc)
	fmt.Printf("  Form:    %v\n", desc.Form)
	fmt.Printf("  Base:    0x%08X\n", desc.Base)
	fmt.Printf("  Mask:    0x%08X\n", desc.Mask)
	fmt.Printf("  Pattern: %v\n", codec.RenderPattern(desc))
	if len(locks) != 0 {
		fmt.Printf("  Locks:   %v\n", locks)
	}
	printFieldMap(desc)
	fmt.Printf("\n  Legend: normal=fixed match | %vyellow%v=var field change | %vred%v=fixed-bit violation\n\n",
		colorLegal, colorReset, colorViolation, colorReset)
}

// printFieldMap prints the field layout, highest bit range first.
func printFieldMap(desc *isa.Descriptor) {
	fields := slices.Clone(desc.Fields)
	slices.SortFunc(fields, func(a, b isa.Field) int {
		return int(b.Offset+b.Width) - int(a.Offset+a.Width)
	})

	fmt.Printf("\n  Fields:\n")
	fmt.Printf("    Field   | Bits     | Width\n")
	fmt.Printf("    --------|----------|------\n")
	for _, fd := range fields {
		fmt.Printf("    %-7v | [%2d:%-2d]  | %2d\n",
			fd.Name, fd.Offset+fd.Width-1, fd.Offset, fd.Width)
	}
}

// printRow prints one explored encoding with per-bit classification colors.
func printRow(desc *isa.Descriptor, row explore.Row) {
	var sb strings.Builder
	for i := 31; i >= 0; i-- {
		bit := byte('0' + (row.Value>>i)&1)
		switch codec.ClassifyBit(desc, row.Value, uint(i)) {
		case codec.BIT_LEGAL_VARIATION:
			sb.WriteString(colorLegal)
			sb.WriteByte(bit)
			sb.WriteString(colorReset)
		case codec.BIT_VIOLATION:
			sb.WriteString(colorViolation)
			sb.WriteByte(bit)
			sb.WriteString(colorReset)
		default:
			sb.WriteByte(bit)
		}
	}

	asm := "<UNDEFINED>"
	if row.Decoded() {
		asm = fmt.Sprintf("%-8v %v", row.Mnemonic, row.Operands)
	}

	highlights := make([]string, 0, len(row.Highlights))
	for _, fd := range desc.Fields {
		value, ok := row.Highlights[fd.Name]
		if ok {
			highlights = append(highlights, fmt.Sprintf("%v=0x%X", fd.Name, value))
		}
	}

	fmt.Printf("0x%08X  %v  %-28v [%v] %v\n",
		row.Value, sb.String(), asm, strings.Join(highlights, ", "), row.Narrative)
}

// describeOpcode prints a single opcode's summary, resolving aliases first.
func describeOpcode(cat *isa.Catalog, mnemonic string, locks isa.Locks) {
	alias, err := cat.LookupAlias(mnemonic)
	if err == nil {
		fmt.Printf("Note: %v is an alias for %v with locked fields %v\n",
			strings.ToUpper(mnemonic), alias.BaseOp, alias.Locks)
	}

	canonical, merged := cat.Resolve(mnemonic, locks)
	desc, err := cat.Lookup(canonical)
	if err != nil {
		log.Fatalf("%v: %v (known: %v)", os.Args[0], err, strings.Join(cat.Opcodes(), ", "))
	}

	fmt.Printf("\nSummary for %v:\n", desc.Name)
	fmt.Printf("  Description: %v\n", desc.Desc)
	fmt.Printf("  Group:       %v\n", desc.Group)
	fmt.Printf("  Form:        %v\n", desc.Form)
	fmt.Printf("  Base:        0x%08X\n", desc.Base)
	fmt.Printf("  Mask:        0x%08X\n", desc.Mask)
	fmt.Printf("  Pattern:     %v\n", codec.RenderPattern(desc))
	if len(merged) != 0 {
		fmt.Printf("  Locks:       %v\n", merged)
	}
	printFieldMap(desc)
}

// printSummary prints every group and descriptor in declaration order.
func printSummary(cat *isa.Catalog) {
	fmt.Printf("\nA64 Opcode Family Summary\n")
	fmt.Printf("=========================\n")
	for group, descs := range cat.All() {
		fmt.Printf("\n--- %v ---\n", group)
		for _, desc := range descs {
			fmt.Printf("  %v:\n", desc.Name)
			fmt.Printf("    Desc:    %v\n", desc.Desc)
			fmt.Printf("    Base:    0x%08X\n", desc.Base)
			fmt.Printf("    Mask:    0x%08X\n", desc.Mask)
			fmt.Printf("    Pattern: %v\n", codec.RenderPattern(desc))
		}
	}
}

// printResult prints a conversion result.
func printResult(res convert.Result) {
	fmt.Printf("  Assembly:   %v\n", res.Asm)
	fmt.Printf("  Hex:        0x%08X\n", res.Hex)
	fmt.Printf("  Bytes (LE): %v\n", res.BytesLE)
	fmt.Printf("  Bytes (BE): %v\n", res.BytesBE)
}

// runInteractive runs the read-convert-print loop.
func runInteractive(cv *convert.Converter) {
	fmt.Println("=== Interactive Instruction Converter ===")
	fmt.Println("  Type 'hex <value>', 'asm <instruction>', or 'quit'")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\na64x> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		command, value, _ := strings.Cut(line, " ")
		value = strings.TrimSpace(value)

		var res convert.Result
		var err error
		switch strings.ToLower(command) {
		case "quit", "exit", "q":
			return
		case "hex":
			res, err = cv.HexToAsm(value)
		case "asm":
			res, err = cv.AsmToHex(value)
		default:
			fmt.Println("  Commands: hex <value>, asm <instruction>, quit")
			continue
		}

		if err != nil {
			fmt.Printf("  Error: %v\n", err)
			continue
		}
		printResult(res)
	}
}
