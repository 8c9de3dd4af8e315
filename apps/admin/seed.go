package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/trezcool/staffroom/core/school"
)

// seed prints the data set the store starts from.
func (cli *commandLine) seed(indent bool) error {
	s, err := cli.svc.Snapshot()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cli.stdout)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(s)
}

// workload prints the aggregate load of every teacher, or of teacherID only.
func (cli *commandLine) workload(teacherID string) error {
	s, err := cli.svc.Snapshot()
	if err != nil {
		return err
	}

	rows := s.Workloads()
	if teacherID != "" {
		if _, ok := s.Teacher(teacherID); !ok {
			return errors.Wrap(school.ErrNotFound, "teacher "+teacherID)
		}
		rows = []school.Workload{s.WorkloadFor(teacherID)}
	}

	w := tabwriter.NewWriter(cli.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPERIODS\tPROXY")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", r.TeacherID, r.TeacherName, r.PeriodsTaken, r.ProxyPeriods)
	}
	return w.Flush()
}
