package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

var boardCatalog = filepath.Join("..", "..", "internal", "catalog", "testdata", "board.yaml")

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--log-level", "silent"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRequiredArgsErrors(t *testing.T) {
	tests := []struct {
		name    string
		cmd     func() *cobra.Command
		args    []string
		wantErr string
	}{
		{
			name:    "decode missing payload",
			cmd:     newRootCmd,
			args:    []string{"decode", "OPERATION"},
			wantErr: "requires at least 2 arg(s), only received 1",
		},
		{
			name:    "fields missing command",
			cmd:     newRootCmd,
			args:    []string{"fields"},
			wantErr: "accepts 1 arg(s), received 0",
		},
		{
			name:    "sentinels bad bit position",
			cmd:     newRootCmd,
			args:    []string{"sentinels", "OPERATION", "x"},
			wantErr: "invalid bit position",
		},
		{
			name:    "set missing assignment",
			cmd:     newRootCmd,
			args:    []string{"set", "OPERATION", "04", "84"},
			wantErr: "missing field=value",
		},
		{
			name:    "set missing payload",
			cmd:     newRootCmd,
			args:    []string{"set", "OPERATION", "OnOffState=On", "Mode=1"},
			wantErr: "missing payload",
		},
		{
			name:    "set bad assignment",
			cmd:     newRootCmd,
			args:    []string{"set", "OPERATION", "04", "OnOffState="},
			wantErr: "invalid assignment",
		},
		{
			name:    "catalog validate missing file",
			cmd:     newRootCmd,
			args:    []string{"catalog", "validate"},
			wantErr: "accepts 1 arg(s), received 0",
		},
		{
			name:    "unknown device",
			cmd:     newRootCmd,
			args:    []string{"commands", "--device", "LM5066"},
			wantErr: "LM5066",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := tt.cmd()
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)
			cmd.SetArgs(tt.args)
			err := cmd.Execute()
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error: got %q want %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestDecodeText(t *testing.T) {
	out, err := execute(t, "decode", "OPERATION", "0x04")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, want := range []string{"OPERATION (0x01)", "0b0000_0100", "OnOffState = Off", "MarginFaultResponse = IgnoreFault"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDecodeJSONWithVOutMode(t *testing.T) {
	out, err := execute(t, "decode", "VOUT_COMMAND", "63", "02", "--vout-mode", "0x97", "--format", "json")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, want := range []string{`"command": "VOUT_COMMAND"`, `"payload": "6302"`, `"unit": "V"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDecodeKeepsFixedVOutMode(t *testing.T) {
	// ISL68224 reports VOUT in DIRECT millivolts regardless of the configured mode
	out, err := execute(t, "decode", "VOUT_COMMAND", "e8", "03", "--device", "ISL68224", "--format", "json")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(out, `"value": "1V"`) {
		t.Errorf("ISL68224 VOUT_COMMAND:\n%s", out)
	}

	out, err = execute(t, "decode", "VOUT_COMMAND", "e8", "03", "--device", "ISL68224", "--vout-mode", "0x15", "--format", "json")
	if err != nil {
		t.Fatalf("decode with --vout-mode: %v", err)
	}
	if !strings.Contains(out, `"value": "0.48828125V"`) {
		t.Errorf("forced VOUT_MODE:\n%s", out)
	}

	_, err = execute(t, "decode", "VOUT_COMMAND", "e8", "03", "--vout-mode", "linear:-40")
	if err == nil || !strings.Contains(err.Error(), "--vout-mode") {
		t.Fatalf("bad --vout-mode: got %v", err)
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := execute(t, "decode", "0xD4", "00", "00")
	if err == nil || !strings.Contains(err.Error(), "MFR_SPECIFIC_D4 on Common failed") {
		t.Fatalf("undefined code: got %v", err)
	}

	_, err = execute(t, "decode", "OPERATION", "04", "00")
	if err == nil || !strings.Contains(err.Error(), "OPERATION on Common failed") {
		t.Fatalf("wrong length: got %v", err)
	}

	_, err = execute(t, "decode", "NOT_A_COMMAND", "04")
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("unknown name: got %v", err)
	}

	_, err = execute(t, "decode", "OPERATION", "zz")
	if err == nil || !strings.Contains(err.Error(), "invalid payload") {
		t.Fatalf("bad hex: got %v", err)
	}
}

func TestSet(t *testing.T) {
	out, err := execute(t, "set", "OPERATION", "0x04", "OnOffState=On", "VoltageCommandSource=VOUT_MARGIN_HIGH")
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	lines := strings.Split(out, "\n")
	if lines[0] != "a4" {
		t.Fatalf("payload: got %q want a4", lines[0])
	}
	if !strings.Contains(out, "VoltageCommandSource = VOUT_MARGIN_HIGH") {
		t.Errorf("diagram missing new source:\n%s", out)
	}

	out, err = execute(t, "set", "VOUT_COMMAND", "63", "02", "Voltage=1.2", "--vout-mode", "0x97", "-q")
	if err != nil {
		t.Fatalf("set voltage: %v", err)
	}
	if out != "6602\n" {
		t.Fatalf("payload: got %q want 6602", out)
	}
}

func TestSetPartialFailure(t *testing.T) {
	out, err := execute(t, "set", "OPERATION", "04", "OnOffState=On", "VoltageCommandSource=1.5")
	if err == nil {
		t.Fatalf("expected error")
	}
	if out != "84\n" {
		t.Fatalf("payload: got %q want 84", out)
	}

	_, err = execute(t, "set", "OPERATION", "04", "VoltageCommandSource=Sideways")
	if err == nil || !strings.Contains(err.Error(), "is not one of") {
		t.Fatalf("bad sentinel: got %v", err)
	}

	_, err = execute(t, "set", "OPERATION", "04", "Brightness=3")
	if err == nil || !strings.Contains(err.Error(), "Brightness") {
		t.Fatalf("unknown field: got %v", err)
	}
}

func TestFieldsAndSentinels(t *testing.T) {
	out, err := execute(t, "fields", "operation")
	if err != nil {
		t.Fatalf("fields: %v", err)
	}
	if !strings.Contains(out, "[5:4]") || !strings.Contains(out, "VoltageCommandSource") {
		t.Errorf("fields output:\n%s", out)
	}

	out, err = execute(t, "sentinels", "OPERATION", "4")
	if err != nil {
		t.Fatalf("sentinels: %v", err)
	}
	if !strings.Contains(out, "0x2  VOUT_MARGIN_HIGH") {
		t.Errorf("sentinels output:\n%s", out)
	}
}

func TestCommandsMarksOverrides(t *testing.T) {
	out, err := execute(t, "commands", "--device", "TPS546B24A")
	if err != nil {
		t.Fatalf("commands: %v", err)
	}
	if !strings.Contains(out, "* 0xDA  READ_ALL") {
		t.Errorf("missing READ_ALL override:\n%s", out)
	}
	if !strings.Contains(out, "  0x01  OPERATION") {
		t.Errorf("missing OPERATION:\n%s", out)
	}

	out, err = execute(t, "commands")
	if err != nil {
		t.Fatalf("commands: %v", err)
	}
	if strings.Contains(out, "0xD4") || strings.Contains(out, "*") {
		t.Errorf("Common listing:\n%s", out)
	}

	out, err = execute(t, "commands", "--all")
	if err != nil {
		t.Fatalf("commands --all: %v", err)
	}
	if !strings.Contains(out, "0xD4  MFR_SPECIFIC_D4") {
		t.Errorf("--all missing 0xD4:\n%s", out)
	}
}

func TestDevices(t *testing.T) {
	out, err := execute(t, "devices")
	if err != nil {
		t.Fatalf("devices: %v", err)
	}
	for _, want := range []string{"Common", "ADM1272", "BMR480", "BMR491", "ISL68224", "TPS546B24A"} {
		if !strings.Contains(out, want) {
			t.Errorf("devices missing %s", want)
		}
	}
}

func TestCatalogCommands(t *testing.T) {
	out, err := execute(t, "catalog", "validate", boardCatalog)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "board: 2 command(s) over BMR480") || !strings.HasSuffix(out, "OK\n") {
		t.Errorf("validate output:\n%s", out)
	}

	out, err = execute(t, "decode", "--catalog", boardCatalog, "MFR_SEQUENCE", "87", "--format", "yaml")
	if err != nil {
		t.Fatalf("decode with catalog: %v", err)
	}
	if !strings.Contains(out, "value: Last") || !strings.Contains(out, "value: \"true\"") {
		t.Errorf("catalog decode:\n%s", out)
	}

	out, err = execute(t, "catalog", "export", "--device", "TPS546B24A", "--format", "toml")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "READ_ALL") || !strings.Contains(out, "TPS546B24A") {
		t.Errorf("export output:\n%s", out)
	}

	path := filepath.Join(t.TempDir(), "adm.yaml")
	if _, err := execute(t, "catalog", "export", "--device", "ADM1272", "-o", path); err != nil {
		t.Fatalf("export to file: %v", err)
	}
	if _, err := execute(t, "catalog", "validate", path); err != nil {
		t.Fatalf("exported catalog does not validate: %v", err)
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pmbus.yaml")
	if _, err := execute(t, "config", "init", "--path", path); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}

	_, err := execute(t, "config", "init", "--path", path)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("second init: got %v", err)
	}
	if _, err := execute(t, "config", "init", "--path", path, "--force"); err != nil {
		t.Fatalf("init --force: %v", err)
	}

	out, err := execute(t, "--config", path, "decode", "OPERATION", "80")
	if err != nil {
		t.Fatalf("decode with config: %v", err)
	}
	if !strings.Contains(out, "OnOffState = On") {
		t.Errorf("decode output:\n%s", out)
	}
}
