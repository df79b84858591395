package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"stencil/internal/identifier"
	"stencil/internal/recording"
)

type resolveOutput struct {
	Identifier  string   `json:"identifier"`
	SessionType string   `json:"session_type"`
	Coach       string   `json:"coach"`
	Student     string   `json:"student"`
	Week        string   `json:"week"`
	Overall     int      `json:"overall_confidence"`
	Confidence  confOut  `json:"confidence"`
	Sources     srcOut   `json:"sources"`
	MethodTrail []string `json:"method_trail"`
}

type confOut struct {
	Coach       int `json:"coach"`
	Student     int `json:"student"`
	Week        int `json:"week"`
	SessionType int `json:"session_type"`
}

type srcOut struct {
	Coach   string `json:"coach,omitempty"`
	Student string `json:"student,omitempty"`
	Week    string `json:"week,omitempty"`
}

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var (
		topic          string
		hostEmail      string
		participants   []string
		transcriptFile string
		chatFile       string
		folderPath     []string
		duration       int
		date           string
		meetingID      string
		meetingUUID    string
		asJSON         bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a single recording and show the stage trail",
		Long: `Resolve one recording from its metadata and print the canonical identifier
with per-field confidence and the stages that were tried. This command is
useful for troubleshooting resolution without touching the catalog.

Examples:
  stencil resolve --topic "Jenny & Arshiya: Week 16" --date 2026-03-14
  stencil resolve --topic "Noor's Personal Meeting Room" --transcript-file transcript.txt
  stencil resolve --topic "Session" --participant "Arshiya Kapoor=arshiya@example.com"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if strings.TrimSpace(topic) == "" {
				return fmt.Errorf("--topic is required")
			}

			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return err
			}
			resolver := ctx.buildResolver(cfg, logger)

			rc := &recording.Context{
				Topic:           topic,
				HostEmail:       hostEmail,
				FolderPath:      folderPath,
				DurationSeconds: duration,
				Timestamp:       date,
				MeetingID:       meetingID,
				UUID:            meetingUUID,
			}
			for _, raw := range participants {
				name, email, _ := strings.Cut(raw, "=")
				rc.Participants = append(rc.Participants, recording.Participant{
					Name:  strings.TrimSpace(name),
					Email: strings.TrimSpace(email),
				})
			}
			if transcriptFile != "" {
				data, err := os.ReadFile(transcriptFile)
				if err != nil {
					return fmt.Errorf("read transcript: %w", err)
				}
				rc.TranscriptText = string(data)
			}
			if chatFile != "" {
				data, err := os.ReadFile(chatFile)
				if err != nil {
					return fmt.Errorf("read chat log: %w", err)
				}
				rc.ChatText = string(data)
			}

			res := resolver.Resolve(rc)
			id := identifier.Build(res, rc.Timestamp, rc.MeetingID, rc.UUID)

			out := resolveOutput{
				Identifier:  id.String(),
				SessionType: string(res.SessionType),
				Coach:       res.Coach,
				Student:     res.Student,
				Week:        res.Week.Token(),
				Overall:     res.Overall,
				Confidence: confOut{
					Coach:       res.Confidence.Coach,
					Student:     res.Confidence.Student,
					Week:        res.Confidence.Week,
					SessionType: res.Confidence.SessionType,
				},
				Sources: srcOut{
					Coach:   res.CoachSource,
					Student: res.StudentSource,
					Week:    res.WeekSource,
				},
				MethodTrail: res.MethodTrail,
			}

			if asJSON {
				return writeJSON(cmd, out)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Identifier: %s\n\n", out.Identifier)
			rows := [][]string{
				{"Coach", out.Coach, fmt.Sprintf("%d", out.Confidence.Coach), out.Sources.Coach},
				{"Student", out.Student, fmt.Sprintf("%d", out.Confidence.Student), out.Sources.Student},
				{"Week", out.Week, fmt.Sprintf("%d", out.Confidence.Week), out.Sources.Week},
				{"Type", out.SessionType, fmt.Sprintf("%d", out.Confidence.SessionType), ""},
			}
			fmt.Fprintln(w, renderTable(
				[]string{"Field", "Value", "Confidence", "Source"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
			))
			fmt.Fprintf(w, "Overall confidence: %s\n", renderConfidence(out.Overall, cfg.Resolver.ReviewThreshold))
			if len(out.MethodTrail) > 0 {
				fmt.Fprintf(w, "Stages tried: %s\n", strings.Join(out.MethodTrail, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Recording topic (required)")
	cmd.Flags().StringVar(&hostEmail, "host-email", "", "Meeting host email")
	cmd.Flags().StringArrayVar(&participants, "participant", nil, "Roster participant as name or name=email (repeatable)")
	cmd.Flags().StringVar(&transcriptFile, "transcript-file", "", "Path to a transcript file")
	cmd.Flags().StringVar(&chatFile, "chat-file", "", "Path to a chat log file")
	cmd.Flags().StringSliceVar(&folderPath, "folder", nil, "Folder path segments, outermost first")
	cmd.Flags().IntVar(&duration, "duration", 0, "Recording duration in seconds")
	cmd.Flags().StringVar(&date, "date", "", "Session date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&meetingID, "meeting-id", "", "Meeting identifier for the traceability suffix")
	cmd.Flags().StringVar(&meetingUUID, "uuid", "", "Meeting UUID for the traceability suffix")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")

	return cmd
}
