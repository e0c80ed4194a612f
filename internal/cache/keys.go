package cache

import (
	"encoding/json"
	"fmt"
	"regexp"
)

/*
键命名约定：<entity>:<operation>:<json序列化参数>
示例：
	skill:list:{"page":1,"limit":20}
	project:item:"a1b2c3"
约定使 InvalidatePattern 能表达"某实体的全部缓存"或"某实体的全部列表查询"。
*/

/*
Key 构造缓存键
功能：参数 JSON 序列化后拼接；序列化失败（如含循环引用）时
退化为 %v 格式化，保证键构造永不失败。
*/
func Key(entity, operation string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%s:%v", entity, operation, params)
	}
	return fmt.Sprintf("%s:%s:%s", entity, operation, data)
}

/* EntityPattern 匹配某实体的全部缓存键 */
func EntityPattern(entity string) *regexp.Regexp {
	return regexp.MustCompile("^" + regexp.QuoteMeta(entity) + ":")
}

/* ListsPattern 匹配某实体的全部列表查询键 */
func ListsPattern(entity string) *regexp.Regexp {
	return regexp.MustCompile("^" + regexp.QuoteMeta(entity) + ":list:")
}

/* ItemPattern 匹配某实体单条记录的缓存键 */
func ItemPattern(entity, id string) *regexp.Regexp {
	quoted, _ := json.Marshal(id)
	return regexp.MustCompile("^" + regexp.QuoteMeta(entity) + ":item:" + regexp.QuoteMeta(string(quoted)) + "$")
}
