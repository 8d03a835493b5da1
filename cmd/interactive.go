package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/prep-roadmap/internal/console"
	"github.com/spigell/prep-roadmap/internal/roadmap"
)

const (
	MenuInteractive = "Interactive mode (analyze custom job descriptions)"
	MenuQuickTest   = "Quick test (sample Google SDE job)"
	MenuDemo        = "Demo samples (multiple sample jobs)"
	MenuShowLatest  = "Show latest roadmap JSON"
	MenuExit        = "Exit"
)

var errExit = errors.New("exit requested")

var menu = []string{MenuInteractive, MenuQuickTest, MenuDemo, MenuShowLatest, MenuExit}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Run the interactive menu",
	Run: func(_ *cobra.Command, _ []string) {
		interactive()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func interactive() {
	a := newApplication(context.Background(), true)
	c := console.New(os.Stdin, os.Stdout)

	c.Banner("AI Interview Preparation Roadmap Generator")
	c.Notice("Running in %s mode.", a.mode)

	for {
		choice, err := c.Choose("Choose mode", menu)
		if err != nil {
			if isInterrupt(err) {
				return
			}
			a.logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleChoice(a, c, choice); err != nil {
			if errors.Is(err, errExit) || isInterrupt(err) {
				return
			}
			a.logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleChoice(a *application, c *console.Console, choice string) error {
	switch choice {
	case MenuInteractive:
		return interactiveMode(a, c)
	case MenuQuickTest:
		c.Banner("Quick Test: Google SDE-1 Analysis")
		_, err := a.generate(quickTestSample, "")
		return err
	case MenuDemo:
		return demoMode(a, c)
	case MenuShowLatest:
		err := a.show("")
		if errors.Is(err, roadmap.ErrNoRoadmaps) {
			c.Notice("No roadmap files found! Generate a roadmap first.")
			return nil
		}
		return err
	case MenuExit:
		c.Notice("Goodbye!")
		return errExit
	default:
		c.Notice("Invalid choice: %s", choice)
		return nil
	}
}

// interactiveMode analyzes job descriptions typed by the user until they
// decline to continue or type quit.
func interactiveMode(a *application, c *console.Console) error {
	c.Banner("INTERACTIVE JOB ANALYSIS MODE")

	for {
		c.Notice("\nEnter job details (or '%s' to go back):", "quit")

		input, err := askJob(c)
		if errors.Is(err, console.ErrQuit) {
			return nil
		}
		if errors.Is(err, console.ErrEmptyDescription) {
			c.Notice("Job description cannot be empty!")
			continue
		}
		if err != nil {
			return err
		}

		c.Notice("\nAnalyzing %s position at %s...", input.Role, input.CompanyName)

		path, err := a.generate(input, "")
		if err != nil {
			a.logger.Error("generating roadmap", zap.Error(err))
			continue
		}

		c.Notice("\nAnalysis complete! Roadmap saved as %s", path)

		again, err := c.Confirm("Analyze another job")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func askJob(c *console.Console) (roadmap.JobInput, error) {
	company, err := c.Ask("Company Name")
	if err != nil {
		return roadmap.JobInput{}, err
	}

	role, err := c.Ask("Job Role")
	if err != nil {
		return roadmap.JobInput{}, err
	}

	description, err := c.AskJobDescription()
	if err != nil {
		return roadmap.JobInput{}, err
	}

	return roadmap.JobInput{
		CompanyName:    company,
		Role:           role,
		JobDescription: description,
	}, nil
}

func demoMode(a *application, c *console.Console) error {
	c.Banner("DEMO MODE - Testing with Sample Job Descriptions")

	for i, sample := range demoSamples {
		c.Notice("\nTest %d: %s - %s", i+1, sample.CompanyName, sample.Role)

		if _, err := a.generate(sample, ""); err != nil {
			return fmt.Errorf("sample %d: %w", i+1, err)
		}

		if i < len(demoSamples)-1 {
			if err := c.Pause("Press Enter to continue to next test..."); err != nil {
				return err
			}
		}
	}

	return nil
}

func isInterrupt(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF)
}
