package main

import (
	"io"
	"log"
	"os"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/grahamscan"
	"github.com/osuushi/grahamscan/internal"
	"github.com/osuushi/grahamscan/internal/gen"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end for the hull builder. "scan" reads points from a file
// or stdin and prints their convex hull, "gen" writes random point clouds in
// the same text format, so the two can be piped together:
//
//	hull gen -n 1000 | hull scan --png hull.png -v

var (
	app      = kingpin.New("hull", "Convex hulls of integer point sets by Graham scan.")
	noColor  = app.Flag("no-color", "Disable colored output.").Envar("HULL_NO_COLOR").Bool()
	profiler = app.Flag("profile", "Write a profile to the current directory.").Enum("cpu", "mem")

	scanCmd     = app.Command("scan", "Compute the convex hull of a point set.").Default()
	scanFile    = scanCmd.Arg("file", "Input file. Reads stdin when omitted.").ExistingFile()
	scanFormat  = scanCmd.Flag("format", "Input format.").Short('f').Default("text").Envar("HULL_FORMAT").Enum("text", "svg")
	scanOutput  = scanCmd.Flag("output", "Output format for the hull.").Short('o').Default("text").Envar("HULL_OUTPUT").Enum("text", "svg")
	scanPivot   = scanCmd.Flag("pivot", "Tie-break between lowest points when choosing the pivot.").Default(internal.PivotLowestLeftmost.String()).Envar("HULL_PIVOT").Enum(internal.PivotRuleNames()...)
	scanPNG     = scanCmd.Flag("png", "Render the points and hull to a PNG file.").String()
	scanScale   = scanCmd.Flag("scale", "Pixels per unit for --png. Zero fits the drawing to 800 pixels.").Default("0").Float64()
	scanImgcat  = scanCmd.Flag("imgcat", "Show the --png rendering inline (iTerm only).").Bool()
	scanAngles  = scanCmd.Flag("angles", "Print the angular sort order around the pivot to stderr.").Bool()
	scanVerbose = scanCmd.Flag("verbose", "Report every input point's status to stderr.").Short('v').Bool()
	scanDebug   = scanCmd.Flag("debug", "Dump the parsed input and the hull to stderr.").Bool()

	genCmd    = app.Command("gen", "Generate a random point set.")
	genCount  = genCmd.Flag("count", "Number of points.").Short('n').Default("100").Int()
	genDist   = genCmd.Flag("distribution", "Point distribution.").Short('d').Default("uniform").Enum("uniform", "gaussian", "circle")
	genRadius = genCmd.Flag("radius", "Coordinates stay within ±radius.").Default("1000").Int64()
	genSigma  = genCmd.Flag("sigma", "Standard deviation for the gaussian distribution.").Default("300").Float64()
	genSeed   = genCmd.Flag("seed", "Random seed.").Default("1").Uint64()
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("hull: ")
	app.HelpFlag.Short('h')

	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	if err := run(command); err != nil {
		log.Fatalf("%s: %v", command, err)
	}
}

func run(command string) error {
	switch *profiler {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	switch command {
	case scanCmd.FullCommand():
		return runScan(os.Stdout, os.Stderr)
	case genCmd.FullCommand():
		return runGen(os.Stdout)
	}
	return errors.Errorf("unknown command %q", command)
}

func runScan(stdout, stderr io.Writer) error {
	au := aurora.NewAurora(!*noColor)

	in := io.Reader(os.Stdin)
	if *scanFile != "" {
		file, err := os.Open(*scanFile)
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}

	var (
		points []*Point
		err    error
	)
	if *scanFormat == "svg" {
		points, err = readSVGPoints(in)
	} else {
		points, err = readPoints(in)
	}
	if err != nil {
		return err
	}

	rule, err := grahamscan.ParsePivotRule(*scanPivot)
	if err != nil {
		return err
	}
	builder := &grahamscan.Builder{Pivot: rule}

	if *scanAngles {
		pivot, err := builder.DbgSortedAngles(stderr, points)
		if err != nil {
			return errors.Wrap(err, "printing angles")
		}
		if pivot != nil {
			log.Printf("pivot %v", au.Yellow(pivot))
		}
	}

	hull, err := grahamscan.ConvexHullWith(builder, points)
	if err != nil {
		return err
	}

	if *scanDebug {
		pretty.Fprintf(stderr, "input: %# v\nhull: %# v\n", points, hull)
	}
	if *scanVerbose {
		if err := writeReport(stderr, au, points, hull); err != nil {
			return err
		}
	}

	if *scanPNG != "" {
		if err := renderPNG(*scanPNG, points, hull); err != nil {
			return err
		}
		if *scanImgcat {
			if err := internal.CatPNG(*scanPNG, stdout); err != nil {
				return err
			}
		}
	}

	if *scanOutput == "svg" {
		return writeSVG(stdout, points, hull)
	}
	return writePoints(stdout, hull)
}

func renderPNG(path string, points []*Point, hull []*Point) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	opts := internal.RenderOptions{Scale: *scanScale, Labels: *scanDebug}
	if err := internal.RenderPNG(file, points, grahamscan.Polygon{Points: hull}, opts); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func runGen(stdout io.Writer) error {
	if *genCount < 0 {
		return errors.Errorf("negative point count %d", *genCount)
	}
	if *genRadius <= 0 || *genRadius > grahamscan.MaxCoordinate {
		return errors.Errorf("radius must be in (0, %d]", grahamscan.MaxCoordinate)
	}

	var points []*Point
	switch *genDist {
	case "gaussian":
		points = gen.Gaussian(*genCount, *genSigma, *genRadius, *genSeed)
	case "circle":
		points = gen.Circle(*genCount, *genRadius)
	default:
		points = gen.Uniform(*genCount, *genRadius, *genSeed)
	}
	return writePoints(stdout, points)
}
