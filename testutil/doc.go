// Package testutil provides shared fixtures for flare tests: in-memory file
// systems and recording OpenTelemetry providers installed for the duration
// of one test.
//
//	func TestPipeline(t *testing.T) {
//	    fs := testutil.MemFs(t, map[string]string{"/in.txt": "a\nb\n"})
//	    tel := testutil.InstallTelemetry(t)
//	    ...
//	    if tel.Counter(t, "records.total") != 2 { ... }
//	}
package testutil
