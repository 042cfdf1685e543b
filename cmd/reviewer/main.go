package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"resumeai/reviewer/internal/assistant"
	"resumeai/reviewer/internal/client"
	"resumeai/reviewer/internal/config"
	"resumeai/reviewer/internal/models"
	"resumeai/reviewer/internal/workflow"
)

// Terminal front-end for the reviewer API: walks the upload / role selection /
// results flow and hosts the mentor chat.
func main() {
	cfg := config.Load()

	api := client.New(cfg.Client.BaseURL, cfg.Client.Timeout)
	flow := workflow.NewController(api)
	chat := assistant.NewSession(api, flow)

	fmt.Println("🎯 AI Resume Reviewer")
	fmt.Printf("   Connected to %s\n", cfg.Client.BaseURL)
	fmt.Println("   Type 'help' for commands.")

	scanner := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	printStage(flow.Snapshot())

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		command, arg := splitCommand(line)
		switch command {
		case "help":
			printHelp()
		case "upload":
			handleUpload(ctx, flow, arg)
		case "roles":
			printRoles()
		case "role":
			flow.SelectRole(arg)
			if flow.Snapshot().TargetRole == "" {
				fmt.Println("Unknown role. Use 'roles' to list the catalog.")
			}
			printStage(flow.Snapshot())
		case "analyze":
			flow.SubmitAnalysis(ctx)
			snapshot := flow.Snapshot()
			if snapshot.LastError != "" {
				fmt.Printf("❌ %s\n", snapshot.LastError)
			} else if snapshot.AnalysisResult != nil {
				printResults(snapshot.AnalysisResult)
			} else {
				fmt.Println("Upload a resume and pick a role first.")
			}
		case "back":
			flow.GoBack()
			printStage(flow.Snapshot())
		case "reset":
			flow.Reset()
			printStage(flow.Snapshot())
		case "ask":
			handleAsk(ctx, chat, arg)
		case "quit", "exit":
			return
		default:
			fmt.Println("Unknown command. Type 'help' for commands.")
		}
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("❌ Input error: %v", err)
	}
}

func splitCommand(line string) (string, string) {
	parts := strings.SplitN(line, " ", 2)
	command := strings.ToLower(parts[0])
	arg := ""
	if len(parts) == 2 {
		arg = strings.TrimSpace(parts[1])
	}
	return command, arg
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  upload <path>   select and submit a PDF resume")
	fmt.Println("  roles           list target roles")
	fmt.Println("  role <title>    pick a target role")
	fmt.Println("  analyze         run the analysis")
	fmt.Println("  back            return to the upload step")
	fmt.Println("  reset           start over")
	fmt.Println("  ask <question>  ask the career mentor")
	fmt.Println("  quit            exit")
}

func handleUpload(ctx context.Context, flow *workflow.Controller, path string) {
	if path == "" {
		fmt.Println("Usage: upload <path-to-pdf>")
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("❌ Failed to read file: %v\n", err)
		return
	}

	flow.SelectFile(workflow.FileRef{
		Name: filepath.Base(path),
		Size: int64(len(data)),
		Data: data,
	})
	if flow.Snapshot().SelectedFile == nil {
		fmt.Println("Only PDF files are accepted.")
		return
	}

	fmt.Println("⏳ Uploading...")
	flow.SubmitUpload(ctx)

	snapshot := flow.Snapshot()
	if snapshot.LastError != "" {
		fmt.Printf("❌ %s\n", snapshot.LastError)
		return
	}
	fmt.Println("✅ Resume parsed. Pick a role with 'role <title>'.")
	printStage(snapshot)
}

func handleAsk(ctx context.Context, chat *assistant.Session, question string) {
	if question == "" {
		fmt.Println("Usage: ask <question>")
		return
	}

	chat.UpdateDraft(question)
	fmt.Println("⏳ Thinking...")
	chat.Send(ctx)

	transcript := chat.Snapshot().Transcript
	if len(transcript) > 0 {
		last := transcript[len(transcript)-1]
		fmt.Printf("🤖 %s\n", last.Text)
	}
}

func printStage(snapshot workflow.Snapshot) {
	switch snapshot.Stage {
	case workflow.StageUpload:
		fmt.Println("📄 Step 1 of 3: upload a PDF resume ('upload <path>')")
	case workflow.StageRoleSelection:
		fmt.Println("🎯 Step 2 of 3: pick a target role ('roles', then 'role <title>', then 'analyze')")
	case workflow.StageResults:
		fmt.Println("📊 Step 3 of 3: results ready ('ask' the mentor, or 'reset')")
	}
}

func printRoles() {
	for _, role := range models.RoleCatalog {
		fmt.Printf("  %-26s %s\n", role.Title, strings.Join(role.Skills, ", "))
	}
}

func printResults(result *models.AnalysisResult) {
	fmt.Printf("📊 Analysis for %s\n", result.TargetRole)
	fmt.Printf("   Overall score: %s/100\n", strconv.FormatFloat(result.OverallScore, 'f', -1, 64))
	fmt.Printf("   Skill match:   %.1f%%\n", result.SkillGap.MatchPercentage)

	if len(result.SkillGap.StrongMatches) > 0 {
		fmt.Printf("   ✅ Strong: %s\n", strings.Join(result.SkillGap.StrongMatches, ", "))
	}
	for _, weak := range result.SkillGap.WeakMatches {
		fmt.Printf("   🟡 %s (%s)\n", weak.Skill, weak.Detail)
	}
	if len(result.SkillGap.MissingSkills) > 0 {
		fmt.Printf("   ❌ Missing: %s\n", strings.Join(result.SkillGap.MissingSkills, ", "))
	}

	if len(result.Recommendations) > 0 {
		fmt.Println("   Recommended projects:")
		for _, rec := range result.Recommendations {
			fmt.Printf("   - %s [%s]\n", rec.Title, rec.Difficulty)
		}
	}
	if len(result.LearningRoadmap) > 0 {
		fmt.Println("   Learning roadmap:")
		for _, step := range result.LearningRoadmap {
			fmt.Printf("   - %s\n", step)
		}
	}
}
