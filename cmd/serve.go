package cmd

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var serverPort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the exported catalog locally and watches for changes",
	Long: `The serve command performs an initial export of the catalog, then
starts a local web server over the output directory. It watches the content
directory for changes and automatically re-exports the site.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Println("Performing initial export...")
		if err := runExport(); err != nil {
			return fmt.Errorf("initial export failed: %w", err)
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create file watcher: %w", err)
		}
		defer watcher.Close()

		go func() {
			// Debounce: editors fire several events per save.
			var rebuildTimer *time.Timer
			debounceDuration := 500 * time.Millisecond

			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return
					}
					if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
						log.Printf("Change detected: %s (%s)", event.Name, event.Op.String())

						// fsnotify does not watch new subdirectories automatically.
						if event.Has(fsnotify.Create) && isDir(event.Name) {
							if err := watcher.Add(event.Name); err != nil {
								log.Printf("Error adding new directory %s to watcher: %v", event.Name, err)
							}
						}

						if rebuildTimer != nil {
							rebuildTimer.Stop()
						}
						rebuildTimer = time.AfterFunc(debounceDuration, func() {
							log.Println("Re-exporting catalog due to changes...")
							if err := runExport(); err != nil {
								log.Printf("Error during re-export: %v", err)
							}
						})
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return
					}
					log.Printf("Watcher error: %v", err)
				}
			}
		}()

		// fsnotify watches are not recursive; add every subdirectory.
		contentDir := appConfig.ContentDir
		if _, statErr := os.Stat(contentDir); os.IsNotExist(statErr) {
			log.Printf("Content directory '%s' not found, not watching.", contentDir)
		} else {
			err = filepath.WalkDir(contentDir, func(path string, d os.DirEntry, err error) error {
				if err != nil {
					log.Printf("Error walking %s: %v", path, err)
					return nil
				}
				if d.IsDir() {
					if watchErr := watcher.Add(path); watchErr != nil {
						log.Printf("Failed to watch %s: %v", path, watchErr)
					}
				}
				return nil
			})
			if err != nil {
				log.Printf("Error during directory walk for watching %s: %v", contentDir, err)
			}
		}

		serverAddr := fmt.Sprintf(":%d", serverPort)
		log.Printf("Serving catalog from '%s' on http://localhost%s", appConfig.OutputDir, serverAddr)
		log.Println("Press Ctrl+C to stop the server.")

		fs := http.FileServer(http.Dir(appConfig.OutputDir))
		http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/") && r.URL.Path != "/" {
				_, err := os.Stat(filepath.Join(appConfig.OutputDir, r.URL.Path, "index.html"))
				if os.IsNotExist(err) {
					http.NotFound(w, r)
					return
				}
			}
			// No caching while editing content locally.
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
			fs.ServeHTTP(w, r)
		})

		if err := http.ListenAndServe(serverAddr, nil); err != nil {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	},
}

func isDir(path string) bool {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fileInfo.IsDir()
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 6060, "Port to serve the catalog on")
	rootCmd.AddCommand(serveCmd)
}
