package services

import (
	"context"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
)

// Reloader is anything that can refresh itself from the environment.
type Reloader interface {
	Reload(ctx context.Context)
}

// WatchEnvFile watches the given dotenv file and reloads the target when it
// changes, so a developer can drop in a GEMINI_API_KEY without restarting.
// Editors often replace the file instead of writing in place, so the watch is
// on the containing directory and events are filtered by name. Blocks until
// the context is cancelled.
func WatchEnvFile(ctx context.Context, path string, target Reloader) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("WATCHER ERROR: Failed to create file watcher: %v", err)
		return
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	name := filepath.Base(path)

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != name {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					log.Printf("WATCHER: %s changed, reloading environment", path)
					if err := godotenv.Overload(path); err != nil {
						log.Printf("WATCHER WARN: Could not reload %s: %v", path, err)
						continue
					}
					target.Reload(ctx)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("WATCHER ERROR: %v", err)
			case <-ctx.Done():
				log.Println("WATCHER: Context cancelled, shutting down watcher.")
				return
			}
		}
	}()

	log.Printf("WATCHER: Watching %s for credential changes", path)
	if err := watcher.Add(dir); err != nil {
		log.Printf("WATCHER ERROR: Failed to add path to watcher: %v", err)
	}

	<-ctx.Done()
}
