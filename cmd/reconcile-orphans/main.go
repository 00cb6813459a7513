// Command reconcile-orphans finds resume blobs that no candidate row
// references. Blob deletion during reject is best-effort, so a failed delete
// after a successful metadata delete leaves an orphaned object behind; this
// tool is the operator-side cleanup for those warnings.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/JainamOswal18/TheBetterHack2025/internal/database"
	"github.com/JainamOswal18/TheBetterHack2025/internal/model"
	"github.com/JainamOswal18/TheBetterHack2025/internal/storage"
)

func main() {
	remove := flag.Bool("delete", false, "delete orphaned blobs instead of only reporting them")
	flag.Parse()

	ctx := context.Background()

	db, err := database.GetMainDB()
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	store, err := storage.NewCloudStorageClient(ctx, os.Getenv("STORAGE_BUCKET"))
	if err != nil {
		log.Fatal("failed to create storage client: ", err)
	}

	objects, err := store.ListObjects(ctx, "resumes/")
	if err != nil {
		log.Fatal("failed to list resume objects: ", err)
	}

	var candidates []model.Candidate
	if err := db.WithContext(ctx).Select("resume_url").Find(&candidates).Error; err != nil {
		log.Fatal("failed to list candidates: ", err)
	}

	referenced := make(map[string]bool, len(candidates))
	for _, candidate := range candidates {
		if path, ok := storage.ObjectPath(candidate.ResumeURL, store.Bucket()); ok {
			referenced[path] = true
		}
	}

	orphans := 0
	for _, object := range objects {
		if referenced[object] {
			continue
		}
		orphans++
		if *remove {
			if err := store.Delete(ctx, object); err != nil {
				log.Printf("failed to delete orphan %s: %v", object, err)
				continue
			}
			fmt.Printf("deleted orphan: %s\n", object)
		} else {
			fmt.Printf("orphan: %s\n", object)
		}
	}

	fmt.Printf("%d object(s) scanned, %d orphan(s) found\n", len(objects), orphans)
	if orphans > 0 && !*remove {
		fmt.Println("re-run with -delete to remove them")
	}
}
