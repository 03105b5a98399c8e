// version.go - Versionsinformation fuer Mobinfer
// Wird beim Release-Build via ldflags ueberschrieben
package version

var Version = "0.0.0"
