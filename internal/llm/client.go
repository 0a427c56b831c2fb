// Package llm 封装对外部生成式AI服务的调用。
// 上层只依赖 Client 接口，具体厂商由 Factory 按配置选择。
package llm

import "context"

// Schema 结构化输出的形状约束。gemini 映射为原生 responseSchema，
// openai 兼容端仅作为 json_object 模式的提示约束。
type Schema struct {
	Type       string
	Properties map[string]*Schema
	Items      *Schema
	Required   []string
}

type Client interface {
	// Generate 自由文本补全，system 为调用方提供的系统指令
	Generate(ctx context.Context, system, prompt string) (string, error)
	// GenerateJSON 严格JSON补全，返回原始JSON文本，由调用方解码
	GenerateJSON(ctx context.Context, system, prompt string, schema *Schema) (string, error)
}
