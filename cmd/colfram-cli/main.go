package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/colfram/colfram"
	"github.com/colfram/colfram/internal/version"
)

func customUsage() {
	fmt.Fprintf(os.Stderr, "colfram DataFrame Library CLI (version %s)\n\n", version.Version)
	fmt.Fprintf(os.Stderr, "Usage: colfram-cli [options]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	fmt.Fprintf(os.Stderr, "  --demo\n\t\tRun the column arithmetic demo\n")
	fmt.Fprintf(os.Stderr, "  --rows N\n\t\tNumber of rows to use (default: 5)\n")
	fmt.Fprintf(os.Stderr, "  -v, --version\n\t\tPrint version information and exit\n")
	fmt.Fprintf(os.Stderr, "  -h, --help\n\t\tShow this help message and exit\n")
}

func main() {
	versionFlag := flag.Bool("v", false, "Print version and exit")
	flag.BoolVar(versionFlag, "version", false, "Print version and exit") // alias
	demoFlag := flag.Bool("demo", false, "Run the column arithmetic demo")
	rowsFlag := flag.Int("rows", 0, "Number of rows to use (default: 5)")

	flag.Usage = customUsage
	flag.Parse()

	if *versionFlag {
		fmt.Print(version.Info().String())
		return
	}

	if *demoFlag {
		runDemo(*rowsFlag)
		return
	}

	flag.Usage()
	os.Exit(1)
}

func runDemo(rows int) {
	fmt.Println("colfram DataFrame Library Demo")
	fmt.Println("==============================")

	if rows == 0 {
		rows = 5
	}

	const (
		basePrice     = 10.0
		priceStep     = 2.5
		baseQuantity  = 1.0
		quantityCycle = 4
	)

	fmt.Printf("Building a %d-row frame from records...\n\n", rows)

	records := make([]colfram.Record, rows)
	for i := range records {
		records[i] = colfram.Record{
			"item":     fmt.Sprintf("item_%d", i+1),
			"price":    basePrice + float64(i)*priceStep,
			"quantity": baseQuantity + float64(i%quantityCycle),
		}
	}

	df, err := colfram.FromRecords(records)
	if err != nil {
		log.Printf("Error building DataFrame: %v", err)
		return
	}

	fmt.Printf("Created DataFrame with %d rows and %d columns\n", df.Len(), df.Width())
	fmt.Println("Columns:", df.Columns())
	fmt.Println()
	fmt.Println(df)
	fmt.Println()

	fmt.Println("Deriving total = price * quantity...")

	price, err := df.Column("price")
	if err != nil {
		log.Printf("Error reading column: %v", err)
		return
	}
	quantity, err := df.Column("quantity")
	if err != nil {
		log.Printf("Error reading column: %v", err)
		return
	}

	total, err := price.Multiply(quantity)
	if err != nil {
		log.Printf("Error computing total column: %v", err)
		return
	}
	df.SetColumn("total", total)

	fmt.Println()
	fmt.Println(df)
	fmt.Println()
	fmt.Printf("Derived column name: %s\n", total.Name())
	fmt.Printf("Frame fingerprint: %016x\n", df.Fingerprint())
}
