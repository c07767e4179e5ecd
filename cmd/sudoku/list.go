package main

import (
	"fmt"
	"strings"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/spf13/cobra"

	"sudoku_engine_go/db"
	"sudoku_engine_go/internal/types"
)

// listSortFields are the record fields List is allowed to sort by.
var listSortFields = []string{"created", "difficulty", "clues", "seed"}

func newListCmd(a *app) *cobra.Command {
	var (
		difficultyName string
		page           int
		size           int
		sortField      string
		sortAsc        bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List puzzles saved in the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			if difficultyName != "" && !slice.Contain(types.DifficultyNames(), difficultyName) {
				return fmt.Errorf("%w: %q", types.ErrUnknownDifficulty, difficultyName)
			}
			if !slice.Contain(listSortFields, sortField) {
				return fmt.Errorf("unknown sort field %q: must be one of %s",
					sortField, strings.Join(listSortFields, ", "))
			}

			store, err := a.store()
			if err != nil {
				return err
			}
			metas, total, err := store.List(page, size, db.ListFilter{
				Difficulty: difficultyName,
				SortField:  sortField,
				SortAsc:    sortAsc,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-8s %-10s %5s  %-20s %s\n", "ID", "DIFFICULTY", "CLUES", "SEED", "CREATED")
			for _, meta := range metas {
				fmt.Fprintf(out, "%-8s %-10s %5d  %-20d %s\n",
					meta.ID, meta.Difficulty, meta.Clues, meta.Seed, meta.Created)
			}
			fmt.Fprintf(out, "%d of %d puzzles (page %d)\n", len(metas), total, page)
			return nil
		},
	}

	cmd.Flags().StringVarP(&difficultyName, "difficulty", "d", "", "only list puzzles at this difficulty")
	cmd.Flags().IntVar(&page, "page", 1, "result page, starting at 1")
	cmd.Flags().IntVar(&size, "size", 20, "puzzles per page")
	cmd.Flags().StringVar(&sortField, "sort", "created", "sort field: created, difficulty, clues or seed")
	cmd.Flags().BoolVar(&sortAsc, "asc", false, "sort ascending instead of descending")
	return cmd
}
