// Package deploy uploads an exported site to an S3 bucket.
//
// Every file under the export directory becomes one object under the
// configured prefix. Objects carry a content type chosen by extension and a
// cache policy chosen by kind: fingerprinted assets are immutable, pages
// revalidate on every request, everything else is cached for an hour.
//
// Assets are uploaded before pages so a visitor never receives a page that
// links an asset not yet in the bucket.
package deploy
