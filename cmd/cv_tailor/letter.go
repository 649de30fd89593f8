package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-tailor/internal/letter"
	"github.com/jonathan/cv-tailor/internal/pipeline"
	"github.com/jonathan/cv-tailor/internal/types"
)

var letterCmd = &cobra.Command{
	Use:   "letter",
	Short: "Generate a motivation letter for a job posting",
	Long:  "Match the CV against the posting and generate a personalized motivation letter built around the matched skills and the posting's responsibilities.",
	RunE:  runLetter,
}

var (
	letterCVFile    string
	letterJobFile   string
	letterJobURL    string
	letterOutFile   string
	letterName      string
	letterEmail     string
	letterPhone     string
	letterAddress   string
	letterEducation string
	letterPortfolio string
	letterGitHub    string
)

func init() {
	letterCmd.Flags().StringVarP(&letterCVFile, "cv", "c", "", "Path to the CV file (.pdf or .docx)")
	letterCmd.Flags().StringVarP(&letterJobFile, "job", "j", "", "Path to a job posting text file")
	letterCmd.Flags().StringVar(&letterJobURL, "job-url", "", "URL to fetch the job posting from")
	letterCmd.Flags().StringVarP(&letterOutFile, "out", "o", "", "Path to output text file (default: stdout)")
	letterCmd.Flags().StringVar(&letterName, "name", "", "Candidate name (default: taken from the CV)")
	letterCmd.Flags().StringVar(&letterEmail, "email", "", "Candidate email (default: taken from the CV)")
	letterCmd.Flags().StringVar(&letterPhone, "phone", "", "Candidate phone")
	letterCmd.Flags().StringVar(&letterAddress, "address", "", "Candidate address")
	letterCmd.Flags().StringVar(&letterEducation, "education", "", "One-line education summary")
	letterCmd.Flags().StringVar(&letterPortfolio, "portfolio", "", "Portfolio URL")
	letterCmd.Flags().StringVar(&letterGitHub, "github", "", "GitHub URL")
	_ = letterCmd.MarkFlagRequired("cv")

	rootCmd.AddCommand(letterCmd)
}

func runLetter(_ *cobra.Command, _ []string) error {
	if (letterJobFile == "") == (letterJobURL == "") {
		return fmt.Errorf("exactly one of --job or --job-url is required")
	}

	outcome, err := pipeline.RunMatch(context.Background(), pipeline.RunOptions{
		CVPath:  letterCVFile,
		JobPath: letterJobFile,
		JobURL:  letterJobURL,
	})
	if err != nil {
		return err
	}

	req := &types.LetterRequest{
		CandidateName:    firstNonEmpty(letterName, outcome.Profile.Contact.Name),
		CandidateEmail:   firstNonEmpty(letterEmail, outcome.Profile.Contact.Email),
		CandidatePhone:   firstNonEmpty(letterPhone, outcome.Profile.Contact.Phone),
		CandidateAddress: letterAddress,
		JobTitle:         outcome.Requirements.JobTitle,
		Company:          outcome.Requirements.Company,
		MatchedSkills:    append(outcome.Result.MatchedRequired, outcome.Result.MatchedPreferred...),
		Responsibilities: outcome.Requirements.Responsibilities,
		Education:        letterEducation,
		PortfolioURL:     letterPortfolio,
		GitHubURL:        letterGitHub,
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("letter details incomplete (candidate name/email not found in CV; use --name/--email): %w", err)
	}

	text := letter.NewGenerator().Generate(req)
	return writeOrPrint(letterOutFile, []byte(text))
}
