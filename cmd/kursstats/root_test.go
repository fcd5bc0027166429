package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mnogodumalon/kurs70/internal/app/features/dashboard"
	"github.com/mnogodumalon/kurs70/internal/domain/models"
	"github.com/mnogodumalon/kurs70/internal/testutil"
)

func testOptions() options {
	return options{timeZone: "UTC"}
}

func TestRun_Report(t *testing.T) {
	dID, tID, kID := testutil.NewID(), testutil.NewID(), testutil.NewID()
	src := &testutil.FakeSource{
		Dozenten:   []models.Dozent{testutil.Dozent(dID, "Anna Berg")},
		Teilnehmer: []models.Teilnehmer{testutil.Teilnehmer(tID, "Max Muster")},
		Kurse:      []models.Kurs{testutil.Kurs(kID, "Yoga", "2999-01-12", testutil.Price(80), dID)},
		Anmeldungen: []models.Anmeldung{
			testutil.Anmeldung("a", tID, kID, "2026-09-01", true),
		},
	}

	var out bytes.Buffer
	if err := run(context.Background(), src, testOptions(), &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Kurse: 1",
		"Anmeldungen: 1",
		"Bevorstehende Kurse",
		"12. Jan. 2999",
		"Yoga (Anna Berg)",
		"80 €",
		"01.09.26",
		"Max Muster · Yoga",
		"Bezahlt",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRun_EmptyPanels(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), &testutil.FakeSource{}, testOptions(), &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Keine bevorstehenden Kurse") || !strings.Contains(got, "Keine Anmeldungen vorhanden") {
		t.Errorf("expected empty-panel texts:\n%s", got)
	}
}

func TestRun_JSON(t *testing.T) {
	src := &testutil.FakeSource{
		Anmeldungen: []models.Anmeldung{testutil.Anmeldung("a", "", "", "", false)},
	}
	opts := testOptions()
	opts.asJSON = true

	var out bytes.Buffer
	if err := run(context.Background(), src, opts, &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	var doc dashboard.StatsDocument
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !doc.Loaded || doc.Unbezahlt != 1 {
		t.Errorf("unexpected document: %+v", doc)
	}
}

func TestRun_LoadFailure(t *testing.T) {
	src := &testutil.FakeSource{AnmeldungenErr: errors.New("service down")}

	var out bytes.Buffer
	err := run(context.Background(), src, testOptions(), &out)
	if !errors.Is(err, errLoadFailed) {
		t.Fatalf("expected errLoadFailed, got %v", err)
	}
	if !strings.Contains(out.String(), "service down") {
		t.Errorf("expected failure reason in output:\n%s", out.String())
	}
}

func TestRun_BadTimeZone(t *testing.T) {
	opts := testOptions()
	opts.timeZone = "Nowhere/Land"

	err := run(context.Background(), &testutil.FakeSource{}, opts, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "invalid time zone") {
		t.Errorf("expected time zone error, got %v", err)
	}
}

func TestRootCmd_MissingApps(t *testing.T) {
	t.Setenv("KURS_LIVINGAPPS_APP_KURSE", "")
	t.Setenv("KURS_LIVINGAPPS_APP_DOZENTEN", "")
	t.Setenv("KURS_LIVINGAPPS_APP_TEILNEHMER", "")
	t.Setenv("KURS_LIVINGAPPS_APP_RAEUME", "")
	t.Setenv("KURS_LIVINGAPPS_APP_ANMELDUNGEN", "")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--app-kurse", "k"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "missing app ids") {
		t.Errorf("expected missing app ids error, got %v", err)
	}
}
