// Package tasks defines the structure for tasks that are sent to Kafka.
package tasks

// AttachmentMirrorTask 描述一次附件镜像作业：把导入记录引用的远程
// 附件下载一份存入对象存储。
type AttachmentMirrorTask struct {
	PostID       string `json:"post_id"`
	AttachmentID string `json:"attachment_id"`
	URL          string `json:"url"`
	Kind         string `json:"kind"`
}
