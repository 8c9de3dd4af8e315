package main

import (
	"context"
	"fmt"
	"text/tabwriter"
)

// parseTimetable runs the timetable parser against the seed teachers and prints the entries.
// Ids that match no teacher are flagged.
func (cli *commandLine) parseTimetable(text string) error {
	s, err := cli.svc.ImportTimetable(context.Background(), text)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cli.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DAY\tPERIOD\tSUBJECT\tCLASS\tTEACHER")
	for _, e := range s.Timetable {
		name := s.TeacherName(e.TeacherID)
		if _, ok := s.Teacher(e.TeacherID); !ok {
			name = e.TeacherID + " (unknown)"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", e.Day, e.Period, e.Subject, e.ClassName, name)
	}
	if err = w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cli.stdout, "%d entries\n", len(s.Timetable))
	return nil
}
