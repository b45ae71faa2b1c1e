package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/subtlepseudonym/sunrise"
)

func main() {
	lat := flag.Float64("lat", 0, "latitude in degrees, north positive")
	lon := flag.Float64("lon", 0, "longitude in degrees, east positive")
	altitude := flag.Float64("altitude", 0, "observer altitude in meters")
	date := flag.String("date", "", "calendar date as YYYY-MM-DD (default today)")
	tz := flag.String("tz", "Local", "time zone used to print event times")
	asJSON := flag.Bool("json", false, "print the report as JSON")
	flag.Parse()

	loc, err := time.LoadLocation(*tz)
	if err != nil {
		log.Fatalf("ERR: load tz location: %s", err)
	}

	day := time.Now().In(loc)
	if *date != "" {
		day, err = time.ParseInLocation(time.DateOnly, *date, loc)
		if err != nil {
			log.Fatalf("ERR: parse date: %s", err)
		}
	}

	location := sunrise.Location{
		Latitude:  *lat,
		Longitude: *lon,
		Altitude:  *altitude,
	}
	report, err := sunrise.Report(location, day, sunrise.DailyEvents)
	if err != nil {
		log.Fatalf("ERR: %s", err)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			log.Fatalf("ERR: encode report: %s", err)
		}
		return
	}

	if err := printReport(os.Stdout, report, loc); err != nil {
		log.Fatalf("ERR: %s", err)
	}
}

func printReport(w io.Writer, report sunrise.DayReport, loc *time.Location) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "date\t%s\n", report.Date)
	fmt.Fprintf(tw, "location\t%v, %v (%vm)\n", report.Location.Latitude, report.Location.Longitude, report.Location.Altitude)
	fmt.Fprintf(tw, "solar noon\t%s\n", report.SolarNoon.In(loc).Format(time.TimeOnly))
	for _, et := range report.Events {
		value := "-"
		if et.Time != nil {
			value = et.Time.In(loc).Format(time.TimeOnly)
		}
		fmt.Fprintf(tw, "%s\t%s\n", et.Event, value)
	}
	return tw.Flush()
}
